// Package api exposes the service over HTTP: sign-up, token confirmation,
// newsletter publication, and the health probe. Handlers decode requests,
// call the workflow services, and translate errors into status codes —
// validation problems and unknown tokens are 400s with a short reason,
// everything else is a bare 500 with the cause logged server-side.
package api
