package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	lin "github.com/g-m-twostay/go-linear"
	"github.com/g-m-twostay/go-linear/Triage"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)
	root := NewRootCommand()
	root.AddCommand(NewBalanceCommand(), NewPostfixCommand(), NewEvalCommand(), NewTriageCommand())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBalanceCommand(t *testing.T) {
	out, err := run(t, "balance", "( [ { } ] )")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	out, err = run(t, "balance", "([)]")
	require.NoError(t, err)
	require.Equal(t, "false\n", out)

	_, err = run(t, "balance")
	require.Error(t, err)
}

func TestPostfixCommand(t *testing.T) {
	out, err := run(t, "postfix", "(5", "+", "3)", "*", "2")
	require.NoError(t, err)
	require.Equal(t, "53+2*\n", out)
}

func TestEvalCommand(t *testing.T) {
	out, err := run(t, "eval", "(5+3)*2")
	require.NoError(t, err)
	require.Equal(t, "16\n", out)

	out, err = run(t, "eval", "--postfix", "72/")
	require.NoError(t, err)
	require.Equal(t, "3.5\n", out)

	_, err = run(t, "eval", "--postfix", "3+")
	var xerr *lin.InvalidExpressionError
	require.ErrorAs(t, err, &xerr)
}

func TestEval_MissingFlag(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set(logLevelConf, "none")
	err := eval(&cobra.Command{Use: "eval"}, []string{"1+1"})
	require.ErrorContains(t, err, postfixFlag)
}

func TestEvalCommand_LogConfig(t *testing.T) {
	t.Setenv("LINEAR_LOG_LEVEL", "verbose")
	_, err := run(t, "eval", "1+1")
	require.ErrorContains(t, err, "unknown log level")

	out, err := run(t, "--log-level", "none", "eval", "1+1")
	require.NoError(t, err)
	require.Equal(t, "2\n", out)
}

func TestTriageCommand(t *testing.T) {
	out, err := run(t, "triage",
		"--patient", "João:3",
		"--patient", "Maria:emergency",
		"--patient", "Pedro:2",
		"--patient", "Ana:1")
	require.NoError(t, err)
	require.Equal(t, ""+
		"1. Patient: Maria | Urgency: EMERGENCY | Arrival: 2\n"+
		"2. Patient: Ana | Urgency: EMERGENCY | Arrival: 4\n"+
		"3. Patient: Pedro | Urgency: URGENT | Arrival: 3\n"+
		"4. Patient: João | Urgency: LOW URGENCY | Arrival: 1\n", out)

	_, err = run(t, "triage", "--patient", "nobody")
	require.ErrorContains(t, err, "want name:urgency")

	_, err = run(t, "triage", "--patient", "Ana:7")
	var uerr *Triage.InvalidUrgencyError
	require.ErrorAs(t, err, &uerr)
}

func TestParsePatient(t *testing.T) {
	p, err := parsePatient("Dr. No: the sequel:urgent", 9)
	require.NoError(t, err)
	require.Equal(t, Triage.Patient{Name: "Dr. No: the sequel", Urgency: Triage.Urgent, Arrival: 9}, p)
}
