package interrupt

import (
	"github.com/adampresley/sigint"
	"github.com/sirupsen/logrus"
)

// Listen calls <exit> with code 1 once the program receives SIGINT.
//
// Entries copied before interruption are left in destination directory.
func Listen(log *logrus.Logger, exit func(code int)) {
	sigint.ListenForSIGINT(func() {
		log.Warn("Interrupted, destination directory may be partially copied")
		exit(1)
	})
}
