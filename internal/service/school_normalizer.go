package service

import (
	"strconv"
	"strings"

	"github.com/pathway-infinity/pathway-api/internal/dto"
)

// CostPlaceholder replaces a missing or empty cost.
const CostPlaceholder = "Contact for pricing"

// Catalog column names, with the camelCase aliases used in our own JSON.
var (
	nameKeys          = []string{"Name", "name"}
	pathwayKeys       = []string{"Pathway", "pathway"}
	industriesKeys    = []string{"Industries", "industries"}
	programLengthKeys = []string{"Program Length", "programLength", "program_length"}
	costKeys          = []string{"Cost", "cost"}
	housingKeys       = []string{"Housing", "housing"}
	websiteKeys       = []string{"Website", "website"}
	locationKeys      = []string{"Location", "location"}
)

// NormalizeSchool turns loosely typed fields into a School with every field
// present.
func NormalizeSchool(id string, fields map[string]any) dto.School {
	cost := joinText(lookup(fields, costKeys))
	if cost == "" {
		cost = CostPlaceholder
	}
	return dto.School{
		ID:            id,
		Name:          joinText(lookup(fields, nameKeys)),
		Pathway:       toTags(lookup(fields, pathwayKeys)),
		Industries:    toTags(lookup(fields, industriesKeys)),
		ProgramLength: toTags(lookup(fields, programLengthKeys)),
		Cost:          cost,
		Housing:       joinText(lookup(fields, housingKeys)),
		Website:       joinText(lookup(fields, websiteKeys)),
		Location:      joinText(lookup(fields, locationKeys)),
	}
}

// NormalizeSchools normalizes client- or model-supplied school objects, which
// carry their id inline.
func NormalizeSchools(raw []map[string]any) []dto.School {
	out := make([]dto.School, 0, len(raw))
	for _, fields := range raw {
		if fields == nil {
			continue
		}
		out = append(out, NormalizeSchool(scalarText(fields["id"]), fields))
	}
	return out
}

func lookup(fields map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := fields[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func toTags(v any) []string {
	tags := []string{}
	switch val := v.(type) {
	case nil:
	case []any:
		for _, item := range val {
			if s := strings.TrimSpace(scalarText(item)); s != "" {
				tags = append(tags, s)
			}
		}
	case []string:
		for _, item := range val {
			if s := strings.TrimSpace(item); s != "" {
				tags = append(tags, s)
			}
		}
	default:
		if s := strings.TrimSpace(scalarText(val)); s != "" {
			tags = append(tags, s)
		}
	}
	return tags
}

// joinText renders a scalar, or joins a list with ", ".
func joinText(v any) string {
	tags := toTags(v)
	return strings.Join(tags, ", ")
}

func scalarText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	default:
		return ""
	}
}
