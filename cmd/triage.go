package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-linear/Triage"
)

const patientFlag = "patient"

// NewTriageCommand returns the command that admits patients in the given order and then serves
// all of them, printing who is seen in turn.
func NewTriageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "triage",
		Short:   "Serve patients by urgency, then by order of arrival",
		Example: `  linear triage --patient "Maria:1" --patient "João:low" --patient "Ana:urgent"`,
		Args:    cobra.NoArgs,
		RunE:    triage,
	}
	cmd.Flags().StringArray(patientFlag, nil, "patient as name:urgency, urgency being 1-3 or emergency/urgent/low; repeatable")
	return cmd
}

// parsePatient splits on the last ':' so names may contain one.
func parsePatient(s string, arrival int) (Triage.Patient, error) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 {
		return Triage.Patient{}, fmt.Errorf("patient %q: want name:urgency", s)
	}
	u, err := Triage.ParseUrgency(s[i+1:])
	if err != nil {
		return Triage.Patient{}, fmt.Errorf("patient %q: %w", s, err)
	}
	return Triage.Patient{Name: strings.TrimSpace(s[:i]), Urgency: u, Arrival: arrival}, nil
}

func triage(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	raw, err := cmd.Flags().GetStringArray(patientFlag)
	if err != nil {
		return err
	}
	desk := Triage.NewDesk(log)
	for i, s := range raw {
		p, err := parsePatient(s, i+1)
		if err != nil {
			return err
		}
		if err = desk.Admit(p); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for n := 1; desk.Waiting() > 0; n++ {
		p, err := desk.Serve()
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(out, "%d. %s\n", n, p); err != nil {
			return err
		}
	}
	return nil
}
