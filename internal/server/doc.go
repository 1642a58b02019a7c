// Package server implements the HTTP front end of the placeholder image
// service.
//
// # Routes
//
// Three GET path shapes are served by a gin engine, all mapping onto a single
// placeholder.Synthesizer call:
//
//   - /{size}: default colors, caption = size
//   - /{size}/{bg}/{fg}: custom colors, caption = size
//   - /{size}/{bg}/{fg}/text={text}: custom colors and caption
//
// {size} is "N" or "WxH"; {bg} and {fg} are six hex digits. The caption
// segment is URL-decoded, so "text=Hello%20World" renders "Hello World". A
// fourth segment that does not start with "text=" is not found, and other
// methods on a known path get 405.
//
// # Responses
//
//   - 200 with Content-Type image/png and the PNG bytes on success
//   - 400 with Content-Type text/plain and body "Invalid parameters" when
//     synthesis fails for any reason
//
// The error body is generic; the underlying error is logged at
// debug level.
//
// # Lifecycle
//
// Start listens and serves until Shutdown is called. Shutdown satisfies the
// samber/do Shutdownable interface so the injector can stop the server.
//
//	srv := server.New(":3000", synth, logger)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
package server
