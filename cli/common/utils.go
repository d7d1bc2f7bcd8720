package common

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/adam-hanna/arrayOperations"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// IntsToStrings converts int slice to strings slice
func IntsToStrings(numbers []int) []string {
	var res []string

	for _, num := range numbers {
		res = append(res, strconv.Itoa(num))
	}

	return res
}

// ParseYmlFile reads YAML file and returns it's content as a map
func ParseYmlFile(path string) (map[string]interface{}, error) {
	fileContent, err := GetFileContentBytes(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read file: %s", err)
	}

	res := make(map[string]interface{})
	if err := yaml.Unmarshal(fileContent, res); err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %s", path, err)
	}

	return res, nil
}

// DecodeMap decodes map parsed from YAML into the structure
// using `mapstructure` tags
func DecodeMap(m map[string]interface{}, v interface{}) error {
	if err := mapstructure.Decode(m, v); err != nil {
		return fmt.Errorf("Failed to decode: %s", err)
	}

	return nil
}

// MapKeys returns sorted keys of the map
func MapKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// GetStringSlicesDifference returns elements of s1
// that aren't present in s2
func GetStringSlicesDifference(s1, s2 []string) []string {
	uniqueStrings := arrayOperations.DifferenceString(s1, s2)
	return arrayOperations.IntersectString(s1, uniqueStrings)
}

// StringSliceContains checks if slice contains the element
func StringSliceContains(s []string, elem string) bool {
	for _, sliceElem := range s {
		if sliceElem == elem {
			return true
		}
	}

	return false
}
