package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/circlecat/mentorship-dashboard/internal/mentorship"
)

// ProfileService edits the caller's personal profile page. All section
// writes are whole-section replacements, mirroring how the profile editor
// submits its forms.
type ProfileService struct {
	users       UserStore
	idGenerator func() string
	logger      *slog.Logger
}

// NewProfileService constructs a profile service.
func NewProfileService(users UserStore, idGenerator func() string, logger *slog.Logger) *ProfileService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &ProfileService{users: users, idGenerator: idGenerator, logger: defaultLogger(logger)}
}

func (s *ProfileService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "ProfileService", operation, attrs...)
}

// GetProfile returns the caller's profile.
func (s *ProfileService) GetProfile(ctx context.Context, principal Principal) (mentorship.Profile, error) {
	user, err := s.load(ctx, principal)
	if err != nil {
		s.loggerWith(ctx, "GetProfile", "principal_id", principal.AccountID).
			ErrorContext(ctx, "failed to load profile", "error", err, "error_kind", ErrorKind(err))
		return mentorship.Profile{}, err
	}
	return user.Profile.Clone(), nil
}

// UpdateBasics replaces the profile header: title, company, and emails.
func (s *ProfileService) UpdateBasics(ctx context.Context, principal Principal, input BasicsInput) error {
	return s.update(ctx, principal, "UpdateBasics", func(profile *mentorship.Profile) error {
		vErr := &ValidationError{}
		primaries := 0
		for _, email := range input.Emails {
			if strings.TrimSpace(email.Email) == "" {
				vErr.add("emails", "email address cannot be empty")
			}
			if email.Primary {
				primaries++
			}
		}
		if len(input.Emails) > 0 && primaries != 1 {
			vErr.add("emails", "exactly one email must be primary")
		}
		if vErr.HasErrors() {
			return vErr
		}

		profile.Title = strings.TrimSpace(input.Title)
		profile.Company = strings.TrimSpace(input.Company)
		profile.Emails = append([]mentorship.ProfileEmail(nil), input.Emails...)
		return nil
	})
}

// ReplaceExperience replaces the work-history section.
func (s *ProfileService) ReplaceExperience(ctx context.Context, principal Principal, inputs []ExperienceInput) error {
	return s.update(ctx, principal, "ReplaceExperience", func(profile *mentorship.Profile) error {
		entries := make([]mentorship.ExperienceEntry, 0, len(inputs))
		for _, input := range inputs {
			entry, err := mentorship.NewExperienceEntry(
				s.entryID(input.ID), input.Title, input.Company,
				input.Start, input.End, input.Current,
			)
			if err != nil {
				return wrapEntryError("experience", err)
			}
			entries = append(entries, entry)
		}
		profile.Experience = entries
		return nil
	})
}

// ReplaceEducation replaces the education section.
func (s *ProfileService) ReplaceEducation(ctx context.Context, principal Principal, inputs []EducationInput) error {
	return s.update(ctx, principal, "ReplaceEducation", func(profile *mentorship.Profile) error {
		entries := make([]mentorship.EducationEntry, 0, len(inputs))
		for _, input := range inputs {
			entry, err := mentorship.NewEducationEntry(
				s.entryID(input.ID), input.Institution, input.Degree, input.Field,
				input.Start, input.End,
			)
			if err != nil {
				return wrapEntryError("education", err)
			}
			entries = append(entries, entry)
		}
		profile.Education = entries
		return nil
	})
}

// ReplaceTraining replaces the training section.
func (s *ProfileService) ReplaceTraining(ctx context.Context, principal Principal, inputs []TrainingInput) error {
	return s.update(ctx, principal, "ReplaceTraining", func(profile *mentorship.Profile) error {
		entries := make([]mentorship.TrainingEntry, 0, len(inputs))
		for _, input := range inputs {
			entry, err := mentorship.NewTrainingEntry(
				s.entryID(input.ID), input.Name, input.Status,
				input.Completed, input.Due, input.Link,
			)
			if err != nil {
				return wrapEntryError("training", err)
			}
			entries = append(entries, entry)
		}
		profile.Training = entries
		return nil
	})
}

func (s *ProfileService) load(ctx context.Context, principal Principal) (mentorship.User, error) {
	if s == nil || s.users == nil {
		return mentorship.User{}, fmt.Errorf("user store not configured")
	}
	if principal.UserID == "" {
		return mentorship.User{}, ErrUnauthorized
	}
	user, err := s.users.GetUser(ctx, principal.UserID)
	if err != nil {
		return mentorship.User{}, err
	}
	return user, nil
}

func (s *ProfileService) update(ctx context.Context, principal Principal, operation string, apply func(*mentorship.Profile) error) error {
	logger := s.loggerWith(ctx, operation, "principal_id", principal.AccountID)

	user, err := s.load(ctx, principal)
	if err != nil {
		logger.ErrorContext(ctx, "failed to update profile", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	if err := apply(&user.Profile); err != nil {
		logger.ErrorContext(ctx, "failed to update profile", "error", err, "error_kind", ErrorKind(err))
		return err
	}

	if err := s.users.PutUser(ctx, user); err != nil {
		logger.ErrorContext(ctx, "failed to update profile", "error", err, "error_kind", ErrorKind(err))
		return err
	}
	logger.InfoContext(ctx, "profile updated")
	return nil
}

func (s *ProfileService) entryID(id string) string {
	if id != "" {
		return id
	}
	return s.idGenerator()
}

// wrapEntryError converts a constructor error into a field-keyed validation
// error for uniform client handling.
func wrapEntryError(section string, err error) error {
	vErr := &ValidationError{}
	vErr.add(section, err.Error())
	return vErr
}
