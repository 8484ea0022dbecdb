package main

import (
	"bytes"
	"fmt"
	"minisheet/contracts"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"
)

const WebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook string
	Update  contracts.DisplayUpdate
}

// WebhookDispatcher posts display updates to per-cell webhook urls.
// Delivery runs on background workers so the mutation path never waits
// on a subscriber. Subscriptions and notifications arrive on different
// request goroutines, so the webhook map carries its own lock.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	done     chan struct{}
	mutex    sync.RWMutex
	webhooks map[string]string
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		done:     make(chan struct{}),
		webhooks: map[string]string{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(reference string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, reference)
	} else {
		manager.webhooks[reference] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(reference string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[reference]
}

func (manager *WebhookDispatcher) Notify(update contracts.DisplayUpdate) {
	manager.mutex.RLock()
	webhook, ok := manager.webhooks[update.Reference]
	manager.mutex.RUnlock()

	if !ok {
		return
	}

	go func() {
		select {
		case manager.queue <- WebhookSendCommand{Webhook: webhook, Update: update}:
		case <-manager.done:
		}
	}()
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

// Close stops the workers and releases in-flight enqueues. The queue
// itself is never closed, so a Notify racing Close cannot hit a closed
// channel.
func (manager *WebhookDispatcher) Close() {
	close(manager.done)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	for {
		select {
		case command := <-manager.queue:
			payload, _ := json.Marshal(command.Update)
			response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

			if err != nil {
				fmt.Printf("Webhook send error: %s\n", err)
			} else if response.StatusCode >= 300 {
				fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
			}

		case <-manager.done:
			return
		}
	}
}
