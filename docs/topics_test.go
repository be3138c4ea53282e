package docs

import (
	"bufio"
	"regexp"
	"slices"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	// Every topic listed in readme.md can be loaded, and every topic is listed
	// in readme.md.
	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) error = %v", err)
	}

	var topicsInReadme []string
	scanner := bufio.NewScanner(strings.NewReader(readme))
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(topicsInReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
	if slices.Contains(all, "readme") {
		t.Errorf("GetAllTopics() = %v, must not list the readme", all)
	}
}

func TestGetTopics(t *testing.T) {
	star, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	both, err := GetTopics("prices", "session")
	if err != nil {
		t.Fatalf("GetTopics() error = %v", err)
	}
	if star != both {
		t.Errorf("GetTopic(*) differs from GetTopics(prices, session)")
	}

	if _, err := GetTopics("session", "nope"); err == nil {
		t.Errorf("GetTopics(session, nope) succeeded, want an error")
	}
}

func TestTitle(t *testing.T) {
	testCases := []struct {
		topic string
		want  string
	}{
		{"readme", "paper"},
		{"session", "Session commands"},
		{"prices", "Prices"},
	}
	for _, tc := range testCases {
		got, err := Title(tc.topic)
		if err != nil {
			t.Errorf("Title(%q) error = %v", tc.topic, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Title(%q) = %q, want %q", tc.topic, got, tc.want)
		}
	}
}

func TestExamples(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for _, topic := range append(topics, "readme") {
		examples, err := Examples(topic)
		if err != nil {
			t.Errorf("Examples(%q) error = %v", topic, err)
			continue
		}
		for _, e := range examples {
			if strings.TrimSpace(e.Session) == "" || strings.TrimSpace(e.Console) == "" {
				t.Errorf("%s.md:%d: empty example", e.Topic, e.Line)
			}
		}
		count += len(examples)
	}
	if count == 0 {
		t.Errorf("no examples found in the documentation")
	}

	examples, err := Examples("prices")
	if err != nil {
		t.Fatal(err)
	}
	if len(examples) != 1 || examples[0].Session != "prices\n" || examples[0].Line != 5 {
		t.Errorf("Examples(prices) = %+v, want a single 'prices' example on line 5", examples)
	}
}
