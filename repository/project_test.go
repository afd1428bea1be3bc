package repository

import (
	"testing"

	"main/model"
)

func boolPtr(b bool) *bool { return &b }

func TestNormalizeProjectStatus(t *testing.T) {
	tests := []struct {
		name    string
		project *model.Project
		want    model.ProjectStatus
	}{
		{
			name:    "Legacy Completed Becomes Completed",
			project: &model.Project{ProjectID: "p1", LegacyCompleted: boolPtr(true)},
			want:    model.StatusCompleted,
		},
		{
			name:    "Legacy Not Completed Becomes Active",
			project: &model.Project{ProjectID: "p2", LegacyCompleted: boolPtr(false)},
			want:    model.StatusActive,
		},
		{
			name:    "No Status No Legacy Flag Becomes Active",
			project: &model.Project{ProjectID: "p3"},
			want:    model.StatusActive,
		},
		{
			name: "Existing Status Wins Over Legacy Flag",
			project: &model.Project{
				ProjectID:       "p4",
				Status:          model.StatusPaused,
				LegacyCompleted: boolPtr(true),
			},
			want: model.StatusPaused,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeProjectStatus(tt.project)
			if got.Status != tt.want {
				t.Errorf("status = %q, want %q", got.Status, tt.want)
			}
			if got.LegacyCompleted != nil {
				t.Error("legacy flag should be cleared after normalization")
			}
			if got.Items == nil || got.URLs == nil {
				t.Error("items and urls should be initialized to empty slices")
			}
		})
	}
}

func TestNormalizeProjectStatusNil(t *testing.T) {
	if NormalizeProjectStatus(nil) != nil {
		t.Error("nil project should stay nil")
	}
}
