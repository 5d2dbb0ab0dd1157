package planner

import (
	"fmt"
	"strings"

	"task-planner.com/task-planner/internal/constants"
)

const (
	MinTasks = 5
	MaxTasks = 8
)

const systemPrompt = "You are an experienced project planner. You break goals down into realistic, dependency-ordered tasks and answer with JSON only."

func unitNames() []string {
	units := make([]string, 0, len(constants.DurationUnits()))
	for _, u := range constants.DurationUnits() {
		units = append(units, string(u))
	}
	return units
}

func priorityNames() []string {
	priorities := make([]string, 0, len(constants.Priorities()))
	for _, p := range constants.Priorities() {
		priorities = append(priorities, string(p))
	}
	return priorities
}

func buildPrompt(goal string) string {
	units := unitNames()
	priorities := priorityNames()

	var b strings.Builder
	b.WriteString("Break down this goal into actionable tasks with dependencies.\n\n")
	fmt.Fprintf(&b, "Goal: %s\n\n", goal)
	b.WriteString(`Provide a JSON response with this structure:
{
  "tasks": [
    {
      "id": 1,
      "name": "task name",
      "description": "detailed description of what to do",
      "estimated_duration": {"value": 2, "unit": "days"},
      "priority": "High",
      "dependencies": []
    }
  ]
}

Rules:
`)
	fmt.Fprintf(&b, "- Create %d-%d tasks with sequential ids starting at 1\n", MinTasks, MaxTasks)
	b.WriteString("- Dependencies are ids of tasks that must be completed first (empty array if none)\n")
	fmt.Fprintf(&b, "- Priority is one of: %s\n", strings.Join(priorities, ", "))
	fmt.Fprintf(&b, "- estimated_duration has \"value\" (positive number) and \"unit\" (one of: %s)\n", strings.Join(units, ", "))
	b.WriteString(`- Choose the unit by task complexity:
  * minutes: very quick tasks (5-60 minutes)
  * hours: part of a day (1-23 hours)
  * days: full days (1-30 days)
  * weeks: longer tasks (1-12 weeks)
  * months: very long tasks (1-12 months)
- Use realistic estimates for each task

Return ONLY the JSON, no other text.
`)
	return b.String()
}
