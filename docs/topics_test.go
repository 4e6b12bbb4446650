package docs

import (
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("fechas")
	if err != nil {
		t.Fatalf("GetTopic(fechas): %v", err)
	}
	if !strings.Contains(content, "dd/mm/yyyy") {
		t.Errorf("fechas topic misses the format: %s", content)
	}

	if _, err := GetTopic("nope"); err == nil {
		t.Error("unknown topic must fail")
	}
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*): %v", err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%s): %v", topic, err)
		}
		if !strings.Contains(all, content) {
			t.Errorf("star expansion misses topic %s", topic)
		}
	}
}

func TestIndex(t *testing.T) {
	// Every embedded topic must appear in the index with its title.
	index, err := Index()
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics embedded")
	}
	for _, topic := range topics {
		if !strings.Contains(index, "* "+topic+": ") {
			t.Errorf("index misses topic %s:\n%s", topic, index)
		}
	}
	if !strings.Contains(index, "* fechas: Formato de Fechas") {
		t.Errorf("index misses the fechas title:\n%s", index)
	}
}
