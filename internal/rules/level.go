// Package rules drives asteroid spawning: per-level spawn weights,
// timing and population caps, and the level progression state machine.
package rules

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcadeworks/steroids/internal/entity"
)

// Level is an immutable rule set for one stretch of gameplay: relative
// spawn weights per asteroid size, the number of asteroids the level
// generates in total, and the bounds of the random interval between
// spawns (seconds).
//
// Weights are relative, not percentages: a small weight of 6 against a
// medium weight of 3 makes a small twice as likely. A zero weight means
// that size never spawns.
type Level struct {
	SmallWeight  int
	MediumWeight int
	LargeWeight  int
	HugeWeight   int
	MaxTotal     int
	MinTime      int
	MaxTime      int
}

// sizeWeights returns the level's weights as weighted-choice pairs.
func (l Level) sizeWeights() []sizeWeight {
	return []sizeWeight{
		{entity.SizeSmall, l.SmallWeight},
		{entity.SizeMedium, l.MediumWeight},
		{entity.SizeLarge, l.LargeWeight},
		{entity.SizeHuge, l.HugeWeight},
	}
}

// LoadLevels parses the line-oriented level data: one level per line,
// seven whitespace-separated integers (four size weights, max total,
// min and max spawn time). Levels apply in file order. Malformed lines
// are a fatal error, as is an empty file.
func LoadLevels(r io.Reader) ([]Level, error) {
	var levels []Level

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 7 {
			return nil, fmt.Errorf("levels line %d: want 7 entries, got %d", lineNum, len(fields))
		}
		values := make([]int, 7)
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("levels line %d: bad number %q: %w", lineNum, f, err)
			}
			values[i] = v
		}

		lvl := Level{
			SmallWeight:  values[0],
			MediumWeight: values[1],
			LargeWeight:  values[2],
			HugeWeight:   values[3],
			MaxTotal:     values[4],
			MinTime:      values[5],
			MaxTime:      values[6],
		}
		if lvl.SmallWeight+lvl.MediumWeight+lvl.LargeWeight+lvl.HugeWeight <= 0 {
			return nil, fmt.Errorf("levels line %d: all spawn weights are zero", lineNum)
		}
		if lvl.MinTime > lvl.MaxTime {
			return nil, fmt.Errorf("levels line %d: min spawn time %d exceeds max %d", lineNum, lvl.MinTime, lvl.MaxTime)
		}
		levels = append(levels, lvl)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels defined")
	}

	return levels, nil
}
