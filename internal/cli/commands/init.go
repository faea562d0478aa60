package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dictkit/dictkit/extractor/interp"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a dictkit.yml configuration file",
		Long:  "Interactively create a dictkit.yml in the current directory.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	const configFile = "dictkit.yml"

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists", configFile)
	}

	thresholdStr := strconv.Itoa(interp.DefaultTruncationThreshold)
	if err := survey.AskOne(&survey.Input{
		Message: "Field-name wrap threshold (runes):",
		Default: thresholdStr,
	}, &thresholdStr, survey.WithValidator(validThreshold)); err != nil {
		return err
	}
	threshold, _ := strconv.Atoi(thresholdStr)

	jsonName := "tables.json"
	if err := survey.AskOne(&survey.Input{
		Message: "JSON artifact name:",
		Default: jsonName,
	}, &jsonName, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	cleanEnabled := false
	if err := survey.AskOne(&survey.Confirm{
		Message: "Normalize known typos in descriptions?",
		Default: false,
	}, &cleanEnabled); err != nil {
		return err
	}

	v := viper.New()
	v.Set("truncation_threshold", threshold)
	v.Set("output.json_name", jsonName)
	v.Set("clean.enabled", cleanEnabled)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("write %s: %w", configFile, err)
	}

	color.Green("Created %s", configFile)
	return nil
}

func validThreshold(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a number")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("threshold must be a positive integer")
	}
	return nil
}
