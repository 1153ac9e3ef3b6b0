package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "summary",
			objectType:  "content",
			identifier:  "1305101920",
			paramsKey:   nil,
			expectedKey: "questionbank:summary:content:1305101920",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "summary",
			objectType:  "content",
			identifier:  "1305101920",
			paramsKey:   []string{},
			expectedKey: "questionbank:summary:content:1305101920",
		},
		{
			name:        "with one paramsKey",
			serviceName: "history",
			objectType:  "session",
			identifier:  "abc",
			paramsKey:   []string{"param1"},
			expectedKey: "questionbank:history:session:abc:param1",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "summary",
			objectType:  "content",
			identifier:  "cx2201",
			paramsKey:   []string{"toc_level_1_title", "56330_ch10_ptg01"},
			expectedKey: "questionbank:summary:content:cx2201:toc_level_1_title_56330_ch10_ptg01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestSummaryKey(t *testing.T) {
	key := SummaryKey("cx2201", "toc_level_1_title", "56330_ch10_ptg01")
	expected := "questionbank:summary:content:cx2201:toc_level_1_title_56330_ch10_ptg01"
	if key != expected {
		t.Errorf("SummaryKey() = %v, want %v", key, expected)
	}
}
