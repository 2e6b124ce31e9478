package knowledge

import (
	"reflect"
	"testing"
)

func TestDetectTopic(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"theft keyword", "My mobile was stolen yesterday", TopicTheft},
		{"consumer keyword", "The seller refused a refund for a defective TV", TopicConsumer},
		{"family keyword", "I want a divorce from my husband", TopicFamily},
		{"criminal keyword", "How do I file an FIR at the police station", TopicCriminal},
		{"theft wins over criminal", "My phone was stolen, should I go to the police?", TopicTheft},
		{"consumer wins over family", "Defective product bought for my wife", TopicConsumer},
		{"family wins over criminal", "My husband filed a false police complaint", TopicFamily},
		{"case insensitive", "STOLEN LAPTOP", TopicTheft},
		{"no match", "What is the procedure for land mutation?", TopicGeneral},
		{"empty message", "", TopicGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTopic(tt.message); got != tt.want {
				t.Errorf("DetectTopic(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractCategories(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []string
	}{
		{
			"single category",
			"I was arrested without a warrant",
			[]string{"Criminal Law"},
		},
		{
			"multiple categories in stable order",
			"Dowry fraud over our property sale agreement",
			[]string{"Criminal Law", "Family Law", "Property Law", "Corporate Law"},
		},
		{
			"phrase keyword",
			"Can I file a civil suit for damages?",
			[]string{"Civil Law"},
		},
		{
			"no match falls back to general",
			"Hello there",
			[]string{GeneralCategory},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCategories(tt.message); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCategories(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestDetectSpecialization(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"criminal", "Someone committed fraud against me", "criminal"},
		{"family", "I need help with child custody", "family"},
		{"consumer", "The warranty claim was rejected", "consumer"},
		{"property", "Land registration dispute with my neighbor", "property"},
		{"corporate", "My business partner broke our partnership agreement", "corporate"},
		{"criminal wins over family", "My wife filed an FIR against me", "criminal"},
		{"family wins over consumer", "Divorce settlement over a defective product business", "family"},
		{"no match", "I have a question about wills", GeneralSpecialization},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSpecialization(tt.message); got != tt.want {
				t.Errorf("DetectSpecialization(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}
