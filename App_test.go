package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"minisheet/contracts"

	"github.com/stretchr/testify/assert"
)

func TestRunApp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f, tmpFileErr := os.CreateTemp("", "db_*.db")
		assert.NoError(t, tmpFileErr)
		defer os.Remove(f.Name())

		_ = os.Setenv("DATABASE_FILEPATH", f.Name())
		defer os.Unsetenv("DATABASE_FILEPATH")

		appErr := make(chan error, 1)
		go func() {
			appErr <- RunApp()
		}()

		var err error
		var res *http.Response
		for i := 0; i < 3; i++ {
			select {
			case runErr := <-appErr:
				t.Fatalf("RunApp() error = %v", runErr)
			default:
			}

			time.Sleep(50 * time.Millisecond)
			client := http.Client{
				Timeout: time.Second * 2,
			}
			res, err = client.Get("http://localhost:8080/healthcheck")
			if err == nil {
				break
			}
		}

		assert.NoError(t, err)

		assert.Equal(t, http.StatusOK, res.StatusCode)
		body, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, "health", string(body))
	})

	t.Run("fail", func(t *testing.T) {
		os.Unsetenv("DATABASE_FILEPATH")

		appErr := make(chan error, 1)
		go func() {
			appErr <- RunApp()
		}()

		select {
		case err := <-appErr:
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "no such file or directory")
		case <-time.After(time.Second * 2):
			t.Error("RunApp() did not fail")
		}
	})
}

func TestGridConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("GRID_ROWS")
		os.Unsetenv("GRID_COLS")

		config := GridConfigFromEnv()

		assert.Equal(t, DefaultGridRows, config.Rows)
		assert.Equal(t, DefaultGridCols, config.Cols)
	})

	t.Run("from_environment", func(t *testing.T) {
		_ = os.Setenv("GRID_ROWS", "40")
		_ = os.Setenv("GRID_COLS", "12")
		defer os.Unsetenv("GRID_ROWS")
		defer os.Unsetenv("GRID_COLS")

		config := GridConfigFromEnv()

		assert.Equal(t, 40, config.Rows)
		assert.Equal(t, 12, config.Cols)
	})

	t.Run("columns_capped", func(t *testing.T) {
		_ = os.Setenv("GRID_COLS", "100")
		defer os.Unsetenv("GRID_COLS")

		config := GridConfigFromEnv()

		assert.Equal(t, contracts.MaxColumns, config.Cols)
	})

	t.Run("garbage_ignored", func(t *testing.T) {
		_ = os.Setenv("GRID_ROWS", "many")
		_ = os.Setenv("GRID_COLS", "-3")
		defer os.Unsetenv("GRID_ROWS")
		defer os.Unsetenv("GRID_COLS")

		config := GridConfigFromEnv()

		assert.Equal(t, DefaultGridRows, config.Rows)
		assert.Equal(t, DefaultGridCols, config.Cols)
	})
}

func TestHandleExitError(t *testing.T) {
	t.Run("Handle exit error", func(t *testing.T) {
		var actualExitCode int
		var out bytes.Buffer

		testCases := map[error]int{
			errors.New("dummy error"): ExitCodeMainError,
			nil:                       0,
		}

		for err, expectedCode := range testCases {
			out.Reset()
			actualExitCode = HandleExitError(&out, err)

			assert.Equal(t, expectedCode, actualExitCode)
			if err == nil {
				assert.Empty(t, out.String(), "Error is not empty")
			} else {
				assert.Contains(t, out.String(), err.Error(), "error output hasn't error description")
			}
		}
	})
}
