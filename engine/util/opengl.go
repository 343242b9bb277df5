package util

import (
	"fmt"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// CheckForGLError logs and returns false if the GL error flag was set.
func CheckForGLError(where string) bool {
	errorCodeOfGL := gl.GetError()

	if errorCodeOfGL != gl.NO_ERROR {
		LogGlError(fmt.Sprintf("[GL] error 0x%x after %s", errorCodeOfGL, where))
		return false
	}
	return true
}
