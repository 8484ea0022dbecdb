package main

import (
	"minisheet/contracts"

	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database          *bbolt.DB
	ReferenceResolver contracts.ReferenceResolver
	FormulaParser     contracts.FormulaParser
	FormulaEvaluator  contracts.FormulaEvaluator
	FormulaRenderer   contracts.FormulaRenderer
	GridRepository    contracts.GridRepository
	WebhookDispatcher contracts.WebhookDispatcher
	DisplayStream     *DisplayStream
	CellStore         contracts.CellStore
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(configDbPath string, gridConfig contracts.GridConfig) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(configDbPath, 0600, nil)

	container.ReferenceResolver = NewReferenceResolver(gridConfig)
	container.FormulaParser = NewFormulaParser(container.ReferenceResolver)
	container.FormulaEvaluator = NewFormulaEvaluator()
	container.FormulaRenderer = NewFormulaRenderer(container.ReferenceResolver)

	container.GridRepository = NewGridRepository(container.Database, NewCellBinarySerializer())
	container.WebhookDispatcher = NewWebhookDispatcher()
	container.DisplayStream = NewDisplayStream()

	resolver := container.ReferenceResolver
	webhooks := container.WebhookDispatcher
	stream := container.DisplayStream
	display := NewDisplayUpdaterChain(
		func(row int, col int, text string) {
			webhooks.Notify(makeDisplayUpdate(resolver, row, col, text))
		},
		func(row int, col int, text string) {
			stream.Broadcast(makeDisplayUpdate(resolver, row, col, text))
		},
	)

	container.CellStore = NewCellStore(
		gridConfig,
		container.FormulaParser,
		container.FormulaEvaluator,
		container.FormulaRenderer,
		container.ReferenceResolver,
		container.GridRepository,
		display,
	)

	container.ApiController = NewApiController(
		container.CellStore,
		container.ReferenceResolver,
		container.WebhookDispatcher,
		container.DisplayStream,
	)

	container.Router = SetupRouter(container.ApiController)

	return
}

// RestoreGrid replays every persisted raw input through the cell store
// so a restarted process comes back with the same grid.
func (container *ServiceContainer) RestoreGrid() error {
	stored, err := container.GridRepository.Restore()
	if err != nil {
		return err
	}

	for _, record := range stored {
		coord, resolveErr := container.ReferenceResolver.Resolve(record.Reference)
		if resolveErr != nil {
			// a record outside the currently configured grid has no slot
			continue
		}

		// formula and parse errors replay their display text through the
		// hook, the same way the original mutation reported them
		_, _ = container.CellStore.SetCellValue(coord.Row, coord.Col, record.RawText)
	}

	return nil
}

func makeDisplayUpdate(resolver contracts.ReferenceResolver, row int, col int, text string) contracts.DisplayUpdate {
	return contracts.DisplayUpdate{
		Reference: resolver.Unresolve(contracts.Coordinate{Row: row, Col: col}),
		Row:       row,
		Col:       col,
		Text:      text,
	}
}
