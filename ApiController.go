package main

import (
	"errors"
	"minisheet/contracts"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// ApiController adapts HTTP requests to the single-threaded cell store.
// The store has no locking of its own, so every store call goes through
// one mutex here.
type ApiController struct {
	CellStore         contracts.CellStore
	ReferenceResolver contracts.ReferenceResolver
	WebhookDispatcher contracts.WebhookDispatcher
	DisplayStream     *DisplayStream

	mutex sync.Mutex
}

type CellEndpointParams struct {
	CellId string `uri:"cell_id" binding:"required"`
}

type SetCellRequest struct {
	Value string `json:"value" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required"`
}

func NewApiController(
	cellStore contracts.CellStore,
	referenceResolver contracts.ReferenceResolver,
	webhookDispatcher contracts.WebhookDispatcher,
	displayStream *DisplayStream,
) *ApiController {
	return &ApiController{
		CellStore:         cellStore,
		ReferenceResolver: referenceResolver,
		WebhookDispatcher: webhookDispatcher,
		DisplayStream:     displayStream,
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var coord contracts.Coordinate
	if err == nil {
		coord, err = api.ReferenceResolver.Resolve(params.CellId)
	}

	if err == nil {
		api.mutex.Lock()
		response, err = api.CellStore.SetCellValue(coord.Row, coord.Col, request.Value)
		api.mutex.Unlock()
	}

	if err != nil {
		if response == nil {
			response = &contracts.Cell{Value: request.Value, Result: err.Error()}
		}
		c.JSON(http.StatusUnprocessableEntity, response)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	var coord contracts.Coordinate
	if err == nil {
		coord, err = api.ReferenceResolver.Resolve(params.CellId)
	}

	if err == nil {
		api.mutex.Lock()
		response, err = api.CellStore.GetCell(coord.Row, coord.Col)
		api.mutex.Unlock()
	}

	if errors.Is(err, contracts.InvalidReferenceError) || errors.Is(err, contracts.CellOutOfRangeError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ClearCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	var coord contracts.Coordinate
	if err == nil {
		coord, err = api.ReferenceResolver.Resolve(params.CellId)
	}

	if err == nil {
		api.mutex.Lock()
		response, err = api.CellStore.ClearCell(coord.Row, coord.Col)
		api.mutex.Unlock()
	}

	if errors.Is(err, contracts.InvalidReferenceError) || errors.Is(err, contracts.CellOutOfRangeError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) GetGridAction(c *gin.Context) {
	api.mutex.Lock()
	snapshot := api.CellStore.Snapshot()
	api.mutex.Unlock()

	c.JSON(http.StatusOK, snapshot)
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	var coord contracts.Coordinate
	if err == nil {
		coord, err = api.ReferenceResolver.Resolve(params.CellId)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(api.ReferenceResolver.Unresolve(coord), request.WebhookUrl)
	c.JSON(http.StatusCreated, gin.H{"webhook_url": request.WebhookUrl})
}

func (api *ApiController) StreamAction(c *gin.Context) {
	if err := api.DisplayStream.Subscribe(c.Writer, c.Request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
