package cmd

import (
	"log"

	"github.com/hireloop/hireloop/pkg/hsdk/herr"
)

// exitIfSDKError inspects errors returned from the SDK and emits user-friendly
// guidance before exiting. Non-SDK errors fall back to log.Fatalf.
func exitIfSDKError(err error) {
	if err == nil {
		return
	}
	switch {
	case herr.IsCode(err, herr.CodeSessionExpired), herr.IsCode(err, herr.CodeUnauthorized):
		log.Fatalf("authentication required: run 'hirectl auth login' (%v)", err)
	case herr.IsCode(err, herr.CodeRefreshFailed):
		log.Fatalf("failed to refresh credentials: run 'hirectl auth login' (%v)", err)
	case herr.IsCode(err, herr.CodeConfig):
		log.Fatalf("configuration error: %v", err)
	default:
		log.Fatalf("%v", err)
	}
}
