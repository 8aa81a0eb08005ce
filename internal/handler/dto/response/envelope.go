package response

import (
	"github.com/jinzhu/copier"
)

// Envelope wraps every successful payload.
type Envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

func OK(data any, message string) Envelope {
	return Envelope{Data: data, Message: message}
}

// copyTo maps between structs with matching field names. A failure means the
// shapes are wrong at compile time, so it panics and is handled by recovery.
func copyTo[T any](src any) T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic("response mapping: " + err.Error())
	}
	return dst
}

func copyList[T any, S any](src []S) []T {
	out := make([]T, 0, len(src))
	for i := range src {
		out = append(out, copyTo[T](&src[i]))
	}
	return out
}
