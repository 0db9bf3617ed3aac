package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

func profileUser() mentorship.User {
	return mentorship.User{
		ID:   "current-user",
		Name: "Current User",
		Profile: mentorship.Profile{
			Title:   "Software Engineer",
			Company: "CircleCat",
		},
	}
}

func TestProfileService_UpdateBasics(t *testing.T) {
	t.Parallel()

	t.Run("replaces the header fields", func(t *testing.T) {
		t.Parallel()

		users := newUserStoreStub(profileUser())
		svc := NewProfileService(users, nil, nil)

		err := svc.UpdateBasics(context.Background(), memberPrincipal, BasicsInput{
			Title:   " Staff Engineer ",
			Company: "CircleCat",
			Emails: []mentorship.ProfileEmail{
				{Email: "currentuser@company.com", Primary: true},
				{Email: "me@personal.example"},
			},
		})
		if err != nil {
			t.Fatalf("UpdateBasics failed: %v", err)
		}

		profile, err := svc.GetProfile(context.Background(), memberPrincipal)
		if err != nil {
			t.Fatalf("GetProfile failed: %v", err)
		}
		if profile.Title != "Staff Engineer" || len(profile.Emails) != 2 {
			t.Fatalf("basics not replaced: %+v", profile)
		}
	})

	t.Run("requires exactly one primary email", func(t *testing.T) {
		t.Parallel()

		svc := NewProfileService(newUserStoreStub(profileUser()), nil, nil)
		err := svc.UpdateBasics(context.Background(), memberPrincipal, BasicsInput{
			Emails: []mentorship.ProfileEmail{
				{Email: "a@company.com", Primary: true},
				{Email: "b@company.com", Primary: true},
			},
		})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestProfileService_ReplaceExperience(t *testing.T) {
	t.Parallel()

	t.Run("replaces the section and assigns ids", func(t *testing.T) {
		t.Parallel()

		users := newUserStoreStub(profileUser())
		svc := NewProfileService(users, func() string { return "exp-1" }, nil)

		err := svc.ReplaceExperience(context.Background(), memberPrincipal, []ExperienceInput{{
			Title:   "Software Engineer",
			Company: "CircleCat",
			Start:   mentorship.MonthYear{Month: time.March, Year: 2021},
			Current: true,
		}})
		if err != nil {
			t.Fatalf("ReplaceExperience failed: %v", err)
		}

		profile, _ := svc.GetProfile(context.Background(), memberPrincipal)
		if len(profile.Experience) != 1 || profile.Experience[0].ID != "exp-1" {
			t.Fatalf("experience not replaced: %+v", profile.Experience)
		}
		if !profile.Experience[0].Current || !profile.Experience[0].End.IsZero() {
			t.Fatalf("current position should clear end date: %+v", profile.Experience[0])
		}
	})

	t.Run("invalid entries leave the profile untouched", func(t *testing.T) {
		t.Parallel()

		users := newUserStoreStub(profileUser())
		svc := NewProfileService(users, nil, nil)

		err := svc.ReplaceExperience(context.Background(), memberPrincipal, []ExperienceInput{{
			Title: "", Company: "CircleCat",
		}})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}

		profile, _ := svc.GetProfile(context.Background(), memberPrincipal)
		if len(profile.Experience) != 0 {
			t.Fatalf("profile mutated on validation failure: %+v", profile.Experience)
		}
	})
}

func TestProfileService_ReplaceTraining(t *testing.T) {
	t.Parallel()

	t.Run("persists training entries", func(t *testing.T) {
		t.Parallel()

		users := newUserStoreStub(profileUser())
		svc := NewProfileService(users, func() string { return "trn-1" }, nil)

		err := svc.ReplaceTraining(context.Background(), memberPrincipal, []TrainingInput{{
			Name:      "Mentoring 101",
			Status:    mentorship.TrainingDone,
			Completed: mentorship.MonthYear{Month: time.May, Year: 2024},
		}})
		if err != nil {
			t.Fatalf("ReplaceTraining failed: %v", err)
		}

		profile, _ := svc.GetProfile(context.Background(), memberPrincipal)
		if len(profile.Training) != 1 || profile.Training[0].Status != mentorship.TrainingDone {
			t.Fatalf("training not replaced: %+v", profile.Training)
		}
	})

	t.Run("done entries require a completion date", func(t *testing.T) {
		t.Parallel()

		svc := NewProfileService(newUserStoreStub(profileUser()), nil, nil)
		err := svc.ReplaceTraining(context.Background(), memberPrincipal, []TrainingInput{{
			Name:   "Mentoring 101",
			Status: mentorship.TrainingDone,
		}})

		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestProfileService_ReplaceEducation(t *testing.T) {
	t.Parallel()

	users := newUserStoreStub(profileUser())
	svc := NewProfileService(users, func() string { return "edu-1" }, nil)

	err := svc.ReplaceEducation(context.Background(), memberPrincipal, []EducationInput{{
		Institution: "State University",
		Degree:      "BSc",
		Field:       "Computer Science",
		Start:       mentorship.MonthYear{Month: time.September, Year: 2015},
		End:         mentorship.MonthYear{Month: time.June, Year: 2019},
	}})
	if err != nil {
		t.Fatalf("ReplaceEducation failed: %v", err)
	}

	profile, _ := svc.GetProfile(context.Background(), memberPrincipal)
	if len(profile.Education) != 1 || profile.Education[0].Institution != "State University" {
		t.Fatalf("education not replaced: %+v", profile.Education)
	}
}

func TestProfileService_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(newUserStoreStub(), nil, nil)
	_, err := svc.GetProfile(context.Background(), Principal{AccountID: "acc-admin"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
