package cli_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/abdidvp/modkraft/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata/django/shop"

// copyFixture gives a test its own copy of a fixture project, since check
// writes reports and history into the project root.
func copyFixture(t *testing.T, dir string) string {
	t.Helper()
	dst := t.TempDir()
	require.NoError(t, os.CopyFS(dst, os.DirFS(dir)))
	return dst
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	out, errBuf := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}
