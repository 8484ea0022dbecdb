// Sheetterm is an interactive terminal display for a minisheet service.
// It edits cells over the HTTP API and follows display updates over the
// websocket stream.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	"minisheet/contracts"

	json "github.com/bytedance/sonic"
	"github.com/docopt/docopt-go"
	"github.com/gorilla/websocket"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

const usage = `sheetterm

Usage:
  sheetterm [--server=URL] [--width=N]
  sheetterm -h

Options:
  -s, --server=URL  Base url of the minisheet service [default: http://localhost:8080].
  -w, --width=N     Display width of one grid cell [default: 16].
  -h, --help        Display this help.

Commands once running:
  set REF TEXT   store TEXT (a number, a =formula, or plain text) in REF
  get REF        print the re-editable text of REF
  clear REF      empty REF
  show           paint the whole grid
  watch          start printing display updates as they arrive
  quit           leave
`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		panic(err.Error())
	}

	server, _ := opts.String("--server")
	width, optErr := opts.Int("--width")
	if optErr != nil || width < 3 {
		width = 16
	}

	client := &SheetClient{
		baseUrl: strings.TrimSuffix(server, "/"),
		http:    &http.Client{Timeout: time.Second * 5},
	}

	if err = runTerminal(client, width); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runTerminal(client *SheetClient, width int) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if quit := command(client, width, scanner.Text()); quit {
				break
			}
		}
		return scanner.Err()
	}

	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("sheet> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		if quit := command(client, width, line); quit {
			return nil
		}
	}
}

// command runs one input line and reports whether the session is over.
func command(client *SheetClient, width int, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true

	case "set":
		if len(fields) < 3 {
			fmt.Println("usage: set REF TEXT")
			break
		}
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(line, "set"), " "+fields[1]))
		cell, err := client.SetCell(fields[1], text)
		if err != nil {
			fmt.Println(err)
		} else {
			fmt.Println(cell.Result)
		}

	case "get":
		if len(fields) != 2 {
			fmt.Println("usage: get REF")
			break
		}
		cell, err := client.GetCell(fields[1])
		if err != nil {
			fmt.Println(err)
		} else {
			fmt.Println(cell.Value)
		}

	case "clear":
		if len(fields) != 2 {
			fmt.Println("usage: clear REF")
			break
		}
		if _, err := client.ClearCell(fields[1]); err != nil {
			fmt.Println(err)
		}

	case "show":
		snapshot, err := client.Snapshot()
		if err != nil {
			fmt.Println(err)
		} else {
			paintGrid(os.Stdout, snapshot, width)
		}

	case "watch":
		if err := client.Watch(); err != nil {
			fmt.Println(err)
		}

	default:
		fmt.Printf("unknown command %q\n", fields[0])
	}

	return false
}

type SheetClient struct {
	baseUrl  string
	http     *http.Client
	watching bool
}

func (client *SheetClient) SetCell(reference string, value string) (*contracts.Cell, error) {
	payload, _ := json.Marshal(map[string]string{"value": value})
	return client.cellRequest(http.MethodPost, reference, bytes.NewReader(payload))
}

func (client *SheetClient) GetCell(reference string) (*contracts.Cell, error) {
	return client.cellRequest(http.MethodGet, reference, nil)
}

func (client *SheetClient) ClearCell(reference string) (*contracts.Cell, error) {
	return client.cellRequest(http.MethodDelete, reference, nil)
}

func (client *SheetClient) Snapshot() (*contracts.GridSnapshot, error) {
	response, err := client.http.Get(client.baseUrl + "/api/v1/grid")
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	snapshot := &contracts.GridSnapshot{}
	if err = json.Unmarshal(raw, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Watch follows the display stream in the background, printing every
// update the server pushes.
func (client *SheetClient) Watch() error {
	if client.watching {
		return nil
	}

	streamUrl, err := url.Parse(client.baseUrl + "/api/v1/stream")
	if err != nil {
		return err
	}
	switch streamUrl.Scheme {
	case "https":
		streamUrl.Scheme = "wss"
	default:
		streamUrl.Scheme = "ws"
	}

	conn, _, err := websocket.DefaultDialer.Dial(streamUrl.String(), nil)
	if err != nil {
		return err
	}

	client.watching = true
	go func() {
		defer func() { client.watching = false }()

		for {
			_, payload, readErr := conn.ReadMessage()
			if readErr != nil {
				return
			}

			update := contracts.DisplayUpdate{}
			if json.Unmarshal(payload, &update) == nil {
				fmt.Printf("%s = %s\n", update.Reference, update.Text)
			}
		}
	}()

	return nil
}

func (client *SheetClient) cellRequest(method string, reference string, body io.Reader) (*contracts.Cell, error) {
	request, err := http.NewRequest(method, client.baseUrl+"/api/v1/cell/"+url.PathEscape(reference), body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	cell := &contracts.Cell{}
	if json.Unmarshal(raw, cell) != nil || response.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%s %s: %s", method, reference, strings.TrimSpace(string(raw)))
	}

	return cell, nil
}

// paintGrid draws the populated bounding box of the snapshot, one fixed
// width column per grid column.
func paintGrid(out io.Writer, snapshot *contracts.GridSnapshot, width int) {
	references := make([]string, 0, len(snapshot.Cells))
	for reference := range snapshot.Cells {
		references = append(references, reference)
	}
	sort.Strings(references)

	maxRow, maxCol := 0, 0
	for _, reference := range references {
		row, col, ok := locate(reference)
		if ok && row > maxRow {
			maxRow = row
		}
		if ok && col > maxCol {
			maxCol = col
		}
	}

	fmt.Fprint(out, "    ")
	for col := 0; col <= maxCol && col < snapshot.Cols; col++ {
		fmt.Fprint(out, clip(string(rune('A'+col)), width))
	}
	fmt.Fprintln(out)

	for row := 0; row <= maxRow && row < snapshot.Rows; row++ {
		fmt.Fprintf(out, "%3d ", row+1)
		for col := 0; col <= maxCol && col < snapshot.Cols; col++ {
			text := ""
			reference := fmt.Sprintf("%c%d", 'A'+col, row+1)
			if cell, ok := snapshot.Cells[reference]; ok {
				text = cell.Result
			}
			fmt.Fprint(out, clip(text, width))
		}
		fmt.Fprintln(out)
	}
}

func locate(reference string) (row int, col int, ok bool) {
	if len(reference) < 2 || reference[0] < 'A' || reference[0] > 'Z' {
		return 0, 0, false
	}

	col = int(reference[0] - 'A')
	for _, digit := range reference[1:] {
		if digit < '0' || digit > '9' {
			return 0, 0, false
		}
		row = row*10 + int(digit-'0')
	}

	return row - 1, col, row > 0
}

func clip(text string, width int) string {
	if len(text) >= width {
		return text[:width-1] + " "
	}

	return text + strings.Repeat(" ", width-len(text))
}
