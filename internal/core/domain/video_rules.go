package domain

import "videohub/pkg/validation"

// VideoRules is the fixed rule list for create and update payloads.
// Order is the order of the returned messages.
var VideoRules = []validation.Rule{
	{Field: FieldTitle, Required: true, IsString: true, MinLength: 1, MaxLength: 40},
	{Field: FieldAuthor, Required: true, IsString: true, MinLength: 1, MaxLength: 20},
	{Field: FieldAvailableResolutions, Required: true, IsArray: true, EnumValues: resolutionValues()},
	{Field: FieldCanBeDownloaded, IsBoolean: true},
	{Field: FieldMinAgeRestriction, IsInteger: true},
}

// ValidateVideo returns every validation message for p, in rule order.
func ValidateVideo(p VideoPayload) []string {
	return validation.CheckAll(p, VideoRules)
}

func resolutionValues() []string {
	values := make([]string, len(Resolutions))
	for i, r := range Resolutions {
		values[i] = string(r)
	}
	return values
}
