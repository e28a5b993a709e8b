package analyzer

import (
	"fmt"
	"strconv"
	"strings"
)

// mapValidateTag maps go-playground/validator tag constraints onto a
// field's schema constraints. fieldType is the canonical type string,
// used to decide whether min/max mean bounds or lengths.
func mapValidateTag(validateTag, fieldType string, c *Constraints) {
	if validateTag == "" {
		return
	}

	for _, tag := range splitValidateTags(validateTag) {
		tag = strings.TrimSpace(tag)
		name, value := parseValidateTag(tag)

		switch name {
		case "required", "omitempty":
			// Handled by isRequired.
		case "email":
			c.Format = "email"
		case "url", "uri":
			c.Format = "uri"
		case "uuid", "uuid3", "uuid4", "uuid5":
			c.Format = "uuid"
		case "datetime":
			c.Format = "date-time"
		case "ipv4", "ip":
			c.Format = "ipv4"
		case "ipv6":
			c.Format = "ipv6"
		case "hostname", "fqdn":
			c.Format = "hostname"
		case "alpha":
			c.Pattern = `^[a-zA-Z]+$`
		case "alphanum":
			c.Pattern = `^[a-zA-Z0-9]+$`
		case "numeric":
			c.Pattern = `^[0-9]+$`
		case "hexadecimal":
			c.Pattern = `^[0-9a-fA-F]+$`
		case "min", "gte":
			if val, err := strconv.ParseFloat(value, 64); err == nil {
				if fieldType == "string" {
					intVal := int(val)
					c.MinLength = &intVal
				} else {
					c.Minimum = &val
				}
			}
		case "max", "lte":
			if val, err := strconv.ParseFloat(value, 64); err == nil {
				if fieldType == "string" {
					intVal := int(val)
					c.MaxLength = &intVal
				} else {
					c.Maximum = &val
				}
			}
		case "len":
			if val, err := strconv.Atoi(value); err == nil && fieldType == "string" {
				c.MinLength = &val
				c.MaxLength = &val
			}
		case "oneof":
			if value != "" {
				c.Enum = strings.Fields(value)
			}
		case "contains":
			if value != "" {
				c.Pattern = fmt.Sprintf(".*%s.*", escapeRegex(value))
			}
		case "startswith":
			if value != "" {
				c.Pattern = fmt.Sprintf("^%s", escapeRegex(value))
			}
		case "endswith":
			if value != "" {
				c.Pattern = fmt.Sprintf("%s$", escapeRegex(value))
			}
		}
	}
}

// isRequired checks if a field is required based on its validate tag.
func isRequired(validateTag string) bool {
	if validateTag == "" {
		return false
	}

	hasRequired := false
	hasOmitempty := false
	for _, tag := range strings.Split(validateTag, ",") {
		switch strings.TrimSpace(tag) {
		case "required":
			hasRequired = true
		case "omitempty":
			hasOmitempty = true
		}
	}
	return hasRequired && !hasOmitempty
}

// splitValidateTags splits validation tags while respecting nested
// structures.
func splitValidateTags(tag string) []string {
	if tag == "" {
		return nil
	}

	var tags []string
	var current strings.Builder
	depth := 0

	for _, ch := range tag {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				tags = append(tags, current.String())
				current.Reset()
				continue
			}
		}
		current.WriteRune(ch)
	}

	if current.Len() > 0 {
		tags = append(tags, current.String())
	}
	return tags
}

// parseValidateTag parses a validation tag into name and value.
func parseValidateTag(tag string) (name, value string) {
	parts := strings.SplitN(tag, "=", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		value = strings.TrimSpace(parts[1])
	}
	return
}

// escapeRegex escapes special regex characters.
func escapeRegex(s string) string {
	result := strings.ReplaceAll(s, "\\", "\\\\")
	special := []string{".", "+", "*", "?", "^", "$", "(", ")", "[", "]", "{", "}", "|"}
	for _, char := range special {
		result = strings.ReplaceAll(result, char, "\\"+char)
	}
	return result
}
