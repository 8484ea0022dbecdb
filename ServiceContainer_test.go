package main

import (
	"minisheet/contracts"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.etcd.io/bbolt"
)

func TestBuildServiceContainer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	gridConfig := contracts.GridConfig{Rows: 10, Cols: 7}

	serviceContainer, err := BuildServiceContainer(f.Name(), gridConfig)

	assert.NoError(t, err)

	// check database
	assert.NotNil(t, serviceContainer.Database)
	assert.IsType(t, &bbolt.DB{}, serviceContainer.Database)

	// check formula engine
	assert.IsType(t, &ReferenceResolver{}, serviceContainer.ReferenceResolver)
	assert.IsType(t, &FormulaParser{}, serviceContainer.FormulaParser)
	assert.IsType(t, &FormulaEvaluator{}, serviceContainer.FormulaEvaluator)
	assert.IsType(t, &FormulaRenderer{}, serviceContainer.FormulaRenderer)

	formulaParser := serviceContainer.FormulaParser.(*FormulaParser)
	assert.Equal(t, serviceContainer.ReferenceResolver, formulaParser.resolver)

	formulaRenderer := serviceContainer.FormulaRenderer.(*FormulaRenderer)
	assert.Equal(t, serviceContainer.ReferenceResolver, formulaRenderer.resolver)

	// check grid repository
	assert.IsType(t, &GridRepository{}, serviceContainer.GridRepository)

	gridRepository := serviceContainer.GridRepository.(*GridRepository)
	assert.Equal(t, serviceContainer.Database, gridRepository.db)
	assert.IsType(t, &CellBinarySerializer{}, gridRepository.serializer)

	// check display collaborators
	assert.IsType(t, &WebhookDispatcher{}, serviceContainer.WebhookDispatcher)
	assert.NotNil(t, serviceContainer.DisplayStream)

	// check cell store
	assert.IsType(t, &CellStore{}, serviceContainer.CellStore)
	assert.Equal(t, gridConfig, serviceContainer.CellStore.Config())

	cellStore := serviceContainer.CellStore.(*CellStore)
	assert.Equal(t, serviceContainer.FormulaParser, cellStore.parser)
	assert.Equal(t, serviceContainer.FormulaEvaluator, cellStore.evaluator)
	assert.Equal(t, serviceContainer.FormulaRenderer, cellStore.renderer)
	assert.Equal(t, serviceContainer.GridRepository, cellStore.repository)
	assert.NotNil(t, cellStore.display)

	// check api controller
	assert.IsType(t, &ApiController{}, serviceContainer.ApiController)

	apiController := serviceContainer.ApiController.(*ApiController)
	assert.Equal(t, serviceContainer.CellStore, apiController.CellStore)
	assert.Equal(t, serviceContainer.ReferenceResolver, apiController.ReferenceResolver)
	assert.Equal(t, serviceContainer.WebhookDispatcher, apiController.WebhookDispatcher)
	assert.Equal(t, serviceContainer.DisplayStream, apiController.DisplayStream)

	// check router
	assert.NotNil(t, serviceContainer.Router)
	assert.IsType(t, &gin.Engine{}, serviceContainer.Router)

	routes := serviceContainer.Router.Routes()
	assert.NotNil(t, routes)
	// 6 api routes + health check
	assert.GreaterOrEqual(t, len(routes), 7)

	assert.NoError(t, serviceContainer.Database.Close())
}

func TestServiceContainer_RestoreGrid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	gridConfig := contracts.GridConfig{Rows: 10, Cols: 7}

	first, err := BuildServiceContainer(f.Name(), gridConfig)
	assert.NoError(t, err)

	_, err = first.CellStore.SetCellValue(0, 0, "5")
	assert.NoError(t, err)

	_, err = first.CellStore.SetCellValue(1, 1, "=A1+1")
	assert.NoError(t, err)

	_, err = first.CellStore.SetCellValue(2, 2, "note")
	assert.NoError(t, err)

	assert.NoError(t, first.Database.Close())

	second, err := BuildServiceContainer(f.Name(), gridConfig)
	assert.NoError(t, err)
	defer second.Database.Close()

	assert.NoError(t, second.RestoreGrid())

	cell, err := second.CellStore.GetCell(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, "=A1+1.000000", cell.Value)
	assert.Equal(t, "6.000000", cell.Result)

	textual, err := second.CellStore.GetTextualValue(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, "note", textual)
}

func TestServiceContainer_RestoreGrid_SkipsOutOfRangeRecords(t *testing.T) {
	f, err := os.CreateTemp("", "db_*.db")
	assert.NoError(t, err)
	defer os.Remove(f.Name())

	first, err := BuildServiceContainer(f.Name(), contracts.GridConfig{Rows: 10, Cols: 7})
	assert.NoError(t, err)

	_, err = first.CellStore.SetCellValue(9, 0, "5")
	assert.NoError(t, err)

	assert.NoError(t, first.Database.Close())

	// a smaller grid no longer has a slot for A10
	second, err := BuildServiceContainer(f.Name(), contracts.GridConfig{Rows: 5, Cols: 7})
	assert.NoError(t, err)
	defer second.Database.Close()

	assert.NoError(t, second.RestoreGrid())

	snapshot := second.CellStore.Snapshot()
	assert.Empty(t, snapshot.Cells)
}
