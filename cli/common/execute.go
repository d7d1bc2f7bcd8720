package common

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

type emptyStruct struct{}
type ReadyChan chan emptyStruct

var (
	spinnerPicture    = spinner.CharSets[9]
	spinnerUpdateTime = 100 * time.Millisecond

	ready = emptyStruct{}
)

func SendReady(c ReadyChan) {
	c <- ready
}

// StartSpinner starts running spinner
// until `ready` flag is received from the channel
func StartSpinner(c ReadyChan, wg *sync.WaitGroup, prefix string) {
	defer wg.Done()

	s := spinner.New(spinnerPicture, spinnerUpdateTime)
	if prefix != "" {
		s.Prefix = fmt.Sprintf("%s ", strings.TrimSpace(prefix))
	}

	s.Start()

	// wait for the function to complete
	<-c

	s.Stop()
}

// RunFunctionWithSpinner executes function and shows a spinner
// with specified prefix until function returns.
// Spinner is shown only if stdout is a terminal
func RunFunctionWithSpinner(f func() error, prefix string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return f()
	}

	var wg sync.WaitGroup
	c := make(ReadyChan, 1)

	wg.Add(1)
	go StartSpinner(c, &wg, prefix)

	err := f()
	SendReady(c)

	wg.Wait()

	return err
}
