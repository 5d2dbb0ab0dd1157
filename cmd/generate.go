package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	dto "task-planner.com/task-planner/internal/data_models"
	"task-planner.com/task-planner/internal/http/validators"
	model "task-planner.com/task-planner/internal/models"
)

var generateGoal string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store a plan for a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := dto.CreatePlanRequest{Goal: generateGoal}
		if err := validators.ValidateCreatePlanRequest(&req); err != nil {
			return err
		}

		a, err := newApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		plan, specs, err := a.planService.CreatePlan(cmd.Context(), req.Goal)
		if err != nil {
			return err
		}

		return writePlanJSON(cmd.OutOrStdout(), plan, specs)
	},
}

func writePlanJSON(w io.Writer, plan *model.Plan, specs []model.TaskSpec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.CreatePlanResponse{
		Success: true,
		PlanID:  plan.ID,
		Message: "Plan created",
		Plan:    dto.GeneratedPlan{Tasks: specs},
	})
}

func init() {
	generateCmd.Flags().StringVarP(&generateGoal, "goal", "g", "", "goal to break down into tasks")
	_ = generateCmd.MarkFlagRequired("goal")
	rootCmd.AddCommand(generateCmd)
}
