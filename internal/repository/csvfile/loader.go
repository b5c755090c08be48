// Package csvfile reads an influencer catalog from a CSV export.
//
// The header row names the columns; order does not matter. Recognised
// columns are id, username, followers, likes, comments, saves, cost (or
// base_cost), engagement_rate and group (or group_tag). followers, likes,
// comments, saves, cost and group are required.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"influencerMDP/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var requiredColumns = []string{"followers", "likes", "comments", "saves", "cost", "group"}

var columnAliases = map[string]string{
	"base_cost": "cost",
	"group_tag": "group",
}

// RowError describes a data row that was not loaded. Line is the 1-based
// line number in the file, header included.
type RowError struct {
	Line   int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

type Result struct {
	Influencers []domain.Influencer
	Rejected    []RowError
}

type Options struct {
	// Strict fails the whole load on the first bad row instead of skipping it.
	Strict bool
}

func LoadFile(path string, opts Options) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Load(f, opts)
}

func Load(r io.Reader, opts Options) (Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, errors.New("catalog is empty")
		}
		return Result{}, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if alias, ok := columnAliases[key]; ok {
			key = alias
		}
		cols[key] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return Result{}, fmt.Errorf("missing column %q", name)
		}
	}

	var res Result
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return Result{}, fmt.Errorf("line %d: %w", line, err)
		}

		inf, err := parseRow(cols, record, line-1)
		if err == nil {
			err = validate.Struct(inf)
		}
		if err != nil {
			rowErr := RowError{Line: line, Reason: err.Error()}
			if opts.Strict {
				return Result{}, rowErr
			}
			res.Rejected = append(res.Rejected, rowErr)
			continue
		}

		res.Influencers = append(res.Influencers, inf)
	}

	return res, nil
}

func parseRow(cols map[string]int, record []string, seq int) (domain.Influencer, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	number := func(name string) (float64, error) {
		raw := field(name)
		if raw == "" {
			return 0, fmt.Errorf("%s is empty", name)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%s must be a finite number, got %q", name, raw)
		}
		return v, nil
	}

	inf := domain.Influencer{
		ID:       uint64(seq),
		Username: field("username"),
		Group:    field("group"),
	}

	if raw := field("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return domain.Influencer{}, fmt.Errorf("id: %w", err)
		}
		inf.ID = id
	}

	followers, err := number("followers")
	if err != nil {
		return domain.Influencer{}, err
	}
	inf.Followers = int64(followers)

	if inf.Likes, err = number("likes"); err != nil {
		return domain.Influencer{}, err
	}
	if inf.Comments, err = number("comments"); err != nil {
		return domain.Influencer{}, err
	}
	if inf.Saves, err = number("saves"); err != nil {
		return domain.Influencer{}, err
	}
	if inf.BaseCost, err = number("cost"); err != nil {
		return domain.Influencer{}, err
	}

	if field("engagement_rate") != "" {
		rate, err := number("engagement_rate")
		if err != nil {
			return domain.Influencer{}, err
		}
		inf.EngagementRate = &rate
	} else if inf.Followers > 0 {
		rate := inf.Engagement() / float64(inf.Followers)
		inf.EngagementRate = &rate
	}

	return inf, nil
}
