// Package mailersend is a client for the MailerSend REST API.
//
// A Client is constructed with functional options and exposes one service
// per API area (Emails, Domains, Tokens, ...). Every operation validates its
// request locally, performs one HTTP call against https://api.mailersend.com/v1
// and returns the result wrapped in an APIResponse envelope.
//
//	client, err := mailersend.New(mailersend.WithAPIKey("your-api-key"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	email, err := mailersend.NewEmailBuilder().
//		From("sender@example.com", "Sender").
//		To("recipient@example.com", "").
//		Subject("Hello").
//		Text("Hello from Go").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.Emails.Send(ctx, email)
//
// Errors returned by the API satisfy errors.Is against the package sentinel
// errors, e.g. errors.Is(err, mailersend.ErrRateLimited). Transient failures
// (429 and 5xx) are retried transparently with exponential backoff before an
// error is surfaced.
package mailersend
