package cli

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "github.com/harborsight/crewfit/internal/errors"
	"github.com/harborsight/crewfit/internal/predict"
	"github.com/harborsight/crewfit/internal/profile"
)

// scoreRequest is the JSON document the score and simulate commands read.
type scoreRequest struct {
	Candidate       profile.Snapshot       `json:"candidate"`
	Crew            []profile.Snapshot     `json:"crew"`
	Vessel          *profile.VesselParams  `json:"vessel,omitempty"`
	Captain         *profile.CaptainVector `json:"captain,omitempty"`
	ExperienceYears *float64               `json:"experience_years,omitempty"`
}

func (r *scoreRequest) toInput() predict.Input {
	return predict.Input{
		Candidate:       r.Candidate,
		Crew:            r.Crew,
		Vessel:          r.Vessel,
		Captain:         r.Captain,
		ExperienceYears: r.ExperienceYears,
	}
}

// validate runs the range contracts over every provided input object.
func (r *scoreRequest) validate() error {
	if err := profile.Validate(&r.Candidate); err != nil {
		return fmt.Errorf("candidate: %w", err)
	}
	for i := range r.Crew {
		if err := profile.Validate(&r.Crew[i]); err != nil {
			return fmt.Errorf("crew[%d]: %w", i, err)
		}
	}
	if r.Vessel != nil {
		if err := profile.Validate(r.Vessel); err != nil {
			return fmt.Errorf("vessel: %w", err)
		}
	}
	if r.Captain != nil {
		if err := profile.Validate(r.Captain); err != nil {
			return fmt.Errorf("captain: %w", err)
		}
	}
	return nil
}

func readScoreRequest(path string) (*scoreRequest, error) {
	var req scoreRequest
	if err := readJSONFile(path, &req); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.WrapError(err, "reading %s", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.WrapError(err, "parsing %s", path)
	}
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.NewInternalError("encoding result", err)
	}
	fmt.Println(string(out))
	return nil
}
