package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic list from readme.md ("* name: ..." lines).
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopicsMatchReadme(t *testing.T) {
	// The readme is the index: every topic it lists must load, and every
	// topic file must be listed.
	listed := readmeTopics(t)
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("readme lists topic %q but it does not load: %v", topic, err)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, l := range listed {
			if l == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q exists but is not listed in readme.md", topic)
		}
	}
}

func TestTopicsStartWithHeading(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() failed: %v", err)
	}
	md := goldmark.New()
	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) failed: %v", topic, err)
			}
			source := []byte(content)
			root := md.Parser().Parse(text.NewReader(source))
			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q should start with a heading, starts with %v", topic, first.Kind())
			}
			if heading.Level != 1 {
				t.Errorf("topic %q heading level = %d, want 1", topic, heading.Level)
			}
		})
	}
}

func TestGetTopics_Star(t *testing.T) {
	content, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) failed: %v", err)
	}
	for _, want := range []string{"# The eleven rules", "# Tiers", "# EODHD"} {
		if !strings.Contains(content, want) {
			t.Errorf("GetTopics(*) missing %q", want)
		}
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Fatal("GetTopic() should fail on an unknown topic")
	}
}
