package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(reference string, webhookUrl string)
	GetWebhookUrl(reference string) string
	Notify(update DisplayUpdate)
	Start()
	Close()
}
