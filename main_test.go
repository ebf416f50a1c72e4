package qpselect_test

import (
	"os"
	"testing"

	"github.com/calvinalkan/qpselect"
)

func TestMain(m *testing.M) {
	qpselect.Debug = true

	os.Exit(m.Run())
}
