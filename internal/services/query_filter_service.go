package services

import (
	"Hoard/internal/dto"
	"Hoard/internal/models"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	comparisonRegex = regexp.MustCompile(`(?i)(\w+)\s+(eq|ne|gt|ge|lt|le|contains)\s+(?:'([^']*)'|"([^"]*)")`)
	andRegex        = regexp.MustCompile(`(?i)^\s+and\s+$`)
)

// ParseFilter reads "field op 'value'" comparisons joined by "and" into
// search criteria layered over base. Supported operators are eq, ne, gt, ge,
// lt, le and contains; which ones apply depends on the field.
func ParseFilter(filter string, base dto.SearchCriteriaDTO) (dto.SearchCriteriaDTO, error) {
	criteria := base
	criteria.IDs = append([]string(nil), base.IDs...)
	criteria.Tags = append([]string(nil), base.Tags...)
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return base, nil
	}

	matches := comparisonRegex.FindAllStringSubmatchIndex(filter, -1)
	if len(matches) == 0 {
		return criteria, invalidArgument("cannot parse filter %q", filter)
	}
	position := 0
	for i, match := range matches {
		gap := filter[position:match[0]]
		if (i == 0 && strings.TrimSpace(gap) != "") || (i > 0 && !andRegex.MatchString(gap)) {
			return criteria, invalidArgument("unexpected %q in filter", strings.TrimSpace(gap))
		}
		position = match[1]

		field := filter[match[2]:match[3]]
		operator := strings.ToLower(filter[match[4]:match[5]])
		var value string
		if match[6] >= 0 {
			value = filter[match[6]:match[7]]
		} else {
			value = filter[match[8]:match[9]]
		}
		if err := applyComparison(&criteria, field, operator, value); err != nil {
			return criteria, err
		}
	}
	if rest := strings.TrimSpace(filter[position:]); rest != "" {
		return criteria, invalidArgument("unexpected %q in filter", rest)
	}
	return criteria, nil
}

func applyComparison(criteria *dto.SearchCriteriaDTO, field, operator, value string) error {
	unsupported := func() error {
		return invalidArgument("operator %s is not supported for %s", operator, field)
	}

	switch field {
	case "query":
		if operator != "eq" && operator != "contains" {
			return unsupported()
		}
		criteria.Query = value
	case "name":
		if operator != "eq" && operator != "contains" {
			return unsupported()
		}
		criteria.Name = &dto.NameMatch{Value: value, Exact: operator == "eq"}
	case "sectionId":
		if operator != "eq" {
			return unsupported()
		}
		criteria.SectionID = value
	case "id":
		if operator != "eq" {
			return unsupported()
		}
		criteria.IDs = append(criteria.IDs, value)
	case "tags", "tag":
		if operator != "eq" && operator != "contains" {
			return unsupported()
		}
		criteria.Tags = append(criteria.Tags, value)
	case "condition":
		if operator != "eq" {
			return unsupported()
		}
		condition := models.Condition(strings.ToLower(value))
		if !condition.Valid() {
			return invalidArgument("unknown condition %q", value)
		}
		criteria.Condition = &condition
	case "isOnLoan", "includeArchived", "includeSections":
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return invalidArgument("%s expects true or false, got %q", field, value)
		}
		switch operator {
		case "eq":
		case "ne":
			flag = !flag
		default:
			return unsupported()
		}
		switch field {
		case "isOnLoan":
			criteria.IsOnLoan = &flag
		case "includeArchived":
			criteria.IncludeArchived = flag
		default:
			criteria.IncludeSections = flag
		}
	case "price", "weight":
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return invalidArgument("%s expects a number, got %q", field, value)
		}
		target := &criteria.PriceRange
		if field == "weight" {
			target = &criteria.WeightRange
		}
		return narrowRange(target, operator, number, unsupported)
	case "createdAt":
		at, err := parseFilterTime(value)
		if err != nil {
			return invalidArgument("createdAt expects a date, got %q", value)
		}
		switch operator {
		case "ge":
			criteria.CreatedFrom = &at
		case "gt":
			after := at.Add(time.Nanosecond)
			criteria.CreatedFrom = &after
		case "le":
			criteria.CreatedTo = &at
		case "lt":
			before := at.Add(-time.Nanosecond)
			criteria.CreatedTo = &before
		case "eq":
			from, to := at, at
			criteria.CreatedFrom, criteria.CreatedTo = &from, &to
		default:
			return unsupported()
		}
	default:
		return invalidArgument("unknown filter field %q", field)
	}
	return nil
}

func narrowRange(target **dto.Range, operator string, value float64, unsupported func() error) error {
	r := &dto.Range{Min: math.Inf(-1), Max: math.Inf(1)}
	if *target != nil {
		*r = **target
	}
	*target = r
	switch operator {
	case "eq":
		r.Min, r.Max = value, value
	case "ge":
		r.Min = math.Max(r.Min, value)
	case "gt":
		r.Min = math.Max(r.Min, math.Nextafter(value, math.Inf(1)))
	case "le":
		r.Max = math.Min(r.Max, value)
	case "lt":
		r.Max = math.Min(r.Max, math.Nextafter(value, math.Inf(-1)))
	default:
		return unsupported()
	}
	return nil
}

func parseFilterTime(value string) (time.Time, error) {
	if at, err := time.Parse(time.RFC3339, value); err == nil {
		return at, nil
	}
	return time.Parse("2006-01-02", value)
}
