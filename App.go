package main

import (
	"fmt"
	"io"
	"minisheet/contracts"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

const ExitCodeMainError = 1

const ListenPort = ":8080"

const DefaultGridRows = 100
const DefaultGridCols = 26

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(os.Getenv("DATABASE_FILEPATH"), GridConfigFromEnv())

	if err == nil {
		err = serviceContainer.RestoreGrid()
	}

	if err == nil {
		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()
		defer serviceContainer.DisplayStream.Close()
		defer serviceContainer.Database.Close()

		err = http.ListenAndServe(ListenPort, serviceContainer.Router)
	}

	return err
}

func GridConfigFromEnv() contracts.GridConfig {
	config := contracts.GridConfig{Rows: DefaultGridRows, Cols: DefaultGridCols}

	if rows, err := strconv.Atoi(os.Getenv("GRID_ROWS")); err == nil && rows > 0 {
		config.Rows = rows
	}

	if cols, err := strconv.Atoi(os.Getenv("GRID_COLS")); err == nil && cols > 0 {
		config.Cols = cols
	}

	if config.Cols > contracts.MaxColumns {
		config.Cols = contracts.MaxColumns
	}

	return config
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
