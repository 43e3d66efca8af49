package exam

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Attribute normalization shared verbatim by the batch and interactive paths.
// All three helpers are idempotent: a value that went through normalization
// once comes out of a second pass unchanged.

// pointsRx accepts plain unsigned integers and decimals, nothing else - no
// units, no signs, no surrounding garbage.
var pointsRx = regexp.MustCompile(`^\d+(\.\d+)?$`)

// NormalizeTitle trims the raw title. Whitespace-only input counts as absent
// and normalizes to the empty string.
func NormalizeTitle(raw string) string {
	return strings.TrimSpace(raw)
}

// NormalizePoints trims the raw value and accepts it only when it parses as a
// plain non-negative integer or decimal. Anything else (units, letters, empty
// input) normalizes to absent.
func NormalizePoints(raw string) string {
	v := strings.TrimSpace(raw)
	if !pointsRx.MatchString(v) {
		return ""
	}
	return v
}

// NormalizeSpace trims the raw answer-space specification. Any non-empty
// string is accepted as is - length units are the caller's responsibility.
func NormalizeSpace(raw string) string {
	return strings.TrimSpace(raw)
}

// NormalizeIDs assigns sequential IDs to all containers that do not have one,
// avoiding collisions with IDs already present in the document. The document
// ID itself, when missing or not a valid UUID, is replaced with a fresh one.
// Returns a new Document, the original remains unchanged.
func (d *Document) NormalizeIDs(log *zap.Logger) *Document {
	result := d.Clone()

	if _, err := uuid.Parse(result.ID); err != nil {
		id, err := uuid.NewV7()
		if err == nil {
			if result.ID != "" {
				log.Warn("Document has invalid ID, correcting", zap.String("old_id", result.ID), zap.Stringer("new_id", id))
			}
			result.ID = id.String()
		}
	}

	existing := make(map[string]struct{})
	collectContainerIDs(result.Blocks, existing)

	counter := 0
	assignContainerIDs(result.Blocks, existing, &counter, log)
	return result
}

func collectContainerIDs(blocks []Block, seen map[string]struct{}) {
	for i := range blocks {
		switch blocks[i].Kind {
		case BlockContainer:
			if id := blocks[i].Container.ID; id != "" {
				seen[id] = struct{}{}
			}
			collectContainerIDs(blocks[i].Container.Children, seen)
		case BlockSolution:
			collectContainerIDs(blocks[i].Solution.Children, seen)
		case BlockGroup:
			collectContainerIDs(blocks[i].Group.Children, seen)
		}
	}
}

func assignContainerIDs(blocks []Block, existing map[string]struct{}, counter *int, log *zap.Logger) {
	for i := range blocks {
		switch blocks[i].Kind {
		case BlockContainer:
			c := blocks[i].Container
			if c.ID == "" {
				for {
					*counter++
					candidate := fmt.Sprintf("cont_%d", *counter)
					if _, exists := existing[candidate]; !exists {
						c.ID = candidate
						existing[candidate] = struct{}{}
						log.Debug("Generated container id", zap.String("ID", candidate))
						break
					}
				}
			}
			assignContainerIDs(c.Children, existing, counter, log)
		case BlockSolution:
			assignContainerIDs(blocks[i].Solution.Children, existing, counter, log)
		case BlockGroup:
			assignContainerIDs(blocks[i].Group.Children, existing, counter, log)
		}
	}
}

// NormalizeSolutionSpace fills in the default answer space on solutions that
// do not carry an explicit one. Returns a new Document, the original remains
// unchanged. Empty defaultSpace leaves the document as is.
func (d *Document) NormalizeSolutionSpace(defaultSpace string, log *zap.Logger) *Document {
	defaultSpace = NormalizeSpace(defaultSpace)
	if defaultSpace == "" {
		return d
	}
	result := d.Clone()
	fillSolutionSpace(result.Blocks, defaultSpace, log)
	return result
}

func fillSolutionSpace(blocks []Block, space string, log *zap.Logger) {
	for i := range blocks {
		switch blocks[i].Kind {
		case BlockSolution:
			if blocks[i].Solution.Space == "" {
				blocks[i].Solution.Space = space
				log.Debug("Applied default answer space", zap.String("space", space))
			}
			fillSolutionSpace(blocks[i].Solution.Children, space, log)
		case BlockContainer:
			fillSolutionSpace(blocks[i].Container.Children, space, log)
		case BlockGroup:
			fillSolutionSpace(blocks[i].Group.Children, space, log)
		}
	}
}
