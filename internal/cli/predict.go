package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"heart-risk-service/internal/adapters/primary/http/dto"
	"heart-risk-service/internal/core/domain"
	"heart-risk-service/internal/core/services"
)

func newPredictCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Assess heart disease risk for one patient",
		Example: "  heartrisk predict --age 63 --sex 1 --cp 3 --trestbps 145 --thalach 150 --oldpeak 2.3\n" +
			"  heartrisk predict --model models/heart_disease_tree.json --output json",
		Args: cobra.NoArgs,
		RunE: runPredict,
	}

	for _, f := range domain.Features() {
		if f.Kind == domain.FeatureFloat {
			cmd.Flags().Float64(f.Name, f.Default, f.Help)
		} else {
			cmd.Flags().Int(f.Name, int(f.Default), f.Help)
		}
	}
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")
	return cmd
}

func runPredict(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "text" && output != "json" {
		return fmt.Errorf("unknown output format %q", output)
	}

	input := inputFromFlags(cmd)
	if err := input.Validate(); err != nil {
		return err
	}

	classifier, model, err := openProvider(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	assessment, err := services.NewAssessmentService(classifier, model).Assess(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("assess: %w", err)
	}

	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.ToAssessmentResponse(assessment))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Input Summary")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, row := range assessment.Summary() {
		fmt.Fprintf(tw, "  %s\t%s\n", row.Feature, row.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	v := assessment.Verdict
	fmt.Fprintln(out)
	fmt.Fprintln(out, v.Headline())
	fmt.Fprintln(out, v.Advice())
	fmt.Fprintf(out, "Confidence Score: %s\n", v.Confidence)
	fmt.Fprintln(out)
	fmt.Fprintln(out, domain.Disclaimer)
	return nil
}

func inputFromFlags(cmd *cobra.Command) domain.AssessmentInput {
	flags := cmd.Flags()
	intFlag := func(name string) int {
		v, _ := flags.GetInt(name)
		return v
	}
	oldpeak, _ := flags.GetFloat64("oldpeak")

	return domain.AssessmentInput{
		Age:            intFlag("age"),
		Sex:            intFlag("sex"),
		ChestPain:      intFlag("cp"),
		RestingBP:      intFlag("trestbps"),
		RestingECG:     intFlag("restecg"),
		MaxHeartRate:   intFlag("thalach"),
		ExerciseAngina: intFlag("exang"),
		STDepression:   oldpeak,
		STSlope:        intFlag("slope"),
		MajorVessels:   intFlag("ca"),
		Thalassemia:    intFlag("thal"),
	}
}
