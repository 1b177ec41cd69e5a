package trend

import "strings"

// CountWordByDay counts the entries containing word, bucketed by publish date.
// Matching is a case-sensitive substring test, and an entry counts once no
// matter how many times the word appears in it.
func CountWordByDay(word string, entries []Entry) DayCounts {
	result := DayCounts{}
	for _, entry := range entries {
		if strings.Contains(entry.Content, word) {
			result[entry.PublishDate]++
		}
	}
	return result
}
