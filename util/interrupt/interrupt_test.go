//go:build !windows

package interrupt

import (
	"os"
	"regexp"
	"syscall"
	"testing"
	"time"

	"asset_copy/util/logger"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/zenizh/go-capturer"
)

func TestListen(t *testing.T) {
	out := capturer.CaptureStderr(func() {
		codes := make(chan int, 1)
		Listen(logger.New(logrus.WarnLevel), func(code int) {
			codes <- code
		})

		err := syscall.Kill(os.Getpid(), syscall.SIGINT)
		assert.NoError(t, err, "should send signal")

		select {
		case code := <-codes:
			assert.Exactly(t, 1, code, "should exit with that exit code")
		case <-time.After(5 * time.Second):
			assert.Fail(t, "exit function was not called")
		}
	})
	assert.Regexp(t, regexp.MustCompile(`WARN.*Interrupted`), out)
}
