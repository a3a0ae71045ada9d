// Package config holds the application settings, loaded from environment
// variables with sensible defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings is the flat configuration surface consumed by the pipeline.
type Settings struct {
	// Platforms
	EnabledPlatforms []string
	PlatformWeights  map[string]float64

	// Merge thresholds
	VectorSimilarityThreshold float64 // stage 1 clustering gate
	TitleJaccardThreshold     float64 // stage 1 title bigram gate
	MinOccurrence             int     // clusters below this are discarded
	SameEventConfidence       float64 // stage 1 LLM keep threshold
	CandidateSimilarity       float64 // stage 2 retrieval floor
	MergeConfidence           float64 // stage 2 LLM merge threshold
	CandidateTopK             int
	CandidateWindowDays       int
	BatchMaxClusters          int

	// Classifier
	RuleScoreThreshold float64

	// Summaries
	SummaryConcurrency     int
	IncrementalMinNewNodes int
	IncrementalMinInterval time.Duration
	MaxContextNodes        int

	// LLM / embeddings
	LLMBaseURL         string
	LLMAPIKey          string
	LLMModel           string
	EmbeddingBaseURL   string
	EmbeddingAPIKey    string
	EmbeddingModel     string
	EmbeddingDimension int
	LLMTimeout         time.Duration
	LLMMaxRetries      int

	// Scheduling
	Timezone          string
	IngestCron        string
	PeriodMergeCron   string
	GlobalMergeCron   string
	MetricsCron       string
	StageDeadline     time.Duration
	IngestConcurrency int
}

// DefaultPlatformWeights mirrors the production weighting of the supported
// platforms. Unlisted platforms weigh 1.0.
var DefaultPlatformWeights = map[string]float64{
	"weibo":   1.2,
	"zhihu":   1.1,
	"baidu":   1.1,
	"toutiao": 1.0,
	"netease": 0.9,
	"sina":    0.8,
	"hupu":    0.8,
}

// Load reads settings from the environment.
func Load() (*Settings, error) {
	weights := map[string]float64{}
	for k, v := range DefaultPlatformWeights {
		weights[k] = v
	}
	if raw := os.Getenv("PLATFORM_WEIGHTS"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &weights); err != nil {
			return nil, fmt.Errorf("invalid PLATFORM_WEIGHTS: %w", err)
		}
	}

	s := &Settings{
		EnabledPlatforms: splitList(getEnv("ENABLED_PLATFORMS", "weibo,zhihu,baidu,toutiao,netease,sina,hupu")),
		PlatformWeights:  weights,

		VectorSimilarityThreshold: getEnvFloat("VECTOR_SIMILARITY_THRESHOLD", 0.85),
		TitleJaccardThreshold:     getEnvFloat("TITLE_JACCARD_THRESHOLD", 0.6),
		MinOccurrence:             getEnvInt("MIN_OCCURRENCE", 2),
		SameEventConfidence:       getEnvFloat("SAME_EVENT_CONFIDENCE", 0.8),
		CandidateSimilarity:       getEnvFloat("CANDIDATE_SIMILARITY", 0.5),
		MergeConfidence:           getEnvFloat("MERGE_CONFIDENCE", 0.75),
		CandidateTopK:             getEnvInt("CANDIDATE_TOP_K", 3),
		CandidateWindowDays:       getEnvInt("CANDIDATE_WINDOW_DAYS", 180),
		BatchMaxClusters:          getEnvInt("BATCH_MAX_CLUSTERS", 200),

		RuleScoreThreshold: getEnvFloat("RULE_SCORE_THRESHOLD", 0.6),

		SummaryConcurrency:     getEnvInt("SUMMARY_CONCURRENCY", 5),
		IncrementalMinNewNodes: getEnvInt("INCREMENTAL_MIN_NEW_NODES", 3),
		IncrementalMinInterval: getEnvDuration("INCREMENTAL_MIN_INTERVAL", 6*time.Hour),
		MaxContextNodes:        getEnvInt("MAX_CONTEXT_NODES", 15),

		LLMBaseURL:         getEnv("LLM_BASE_URL", "https://dashscope.aliyuncs.com/compatible-mode/v1"),
		LLMAPIKey:          os.Getenv("LLM_API_KEY"),
		LLMModel:           getEnv("LLM_MODEL", "qwen3-32b"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", ""),
		EmbeddingAPIKey:    os.Getenv("EMBEDDING_API_KEY"),
		EmbeddingModel:     getEnv("EMBEDDING_MODEL", "Qwen3-Embedding-8B"),
		EmbeddingDimension: getEnvInt("EMBEDDING_DIMENSION", 4096),
		LLMTimeout:         getEnvDuration("LLM_TIMEOUT", 60*time.Second),
		LLMMaxRetries:      getEnvInt("LLM_MAX_RETRIES", 3),

		Timezone:          getEnv("TIMEZONE", "Asia/Shanghai"),
		IngestCron:        getEnv("INGEST_CRON", "0 8,10,12,14,16,18,20,22 * * *"),
		PeriodMergeCron:   getEnv("PERIOD_MERGE_CRON", "15 12,18,22 * * *"),
		GlobalMergeCron:   getEnv("GLOBAL_MERGE_CRON", "30 12,18,22 * * *"),
		MetricsCron:       getEnv("METRICS_CRON", "0 1 * * *"),
		StageDeadline:     getEnvDuration("STAGE_DEADLINE", 15*time.Minute),
		IngestConcurrency: getEnvInt("INGEST_CONCURRENCY", 4),
	}

	if s.EmbeddingBaseURL == "" {
		s.EmbeddingBaseURL = s.LLMBaseURL
	}
	if s.EmbeddingAPIKey == "" {
		s.EmbeddingAPIKey = s.LLMAPIKey
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Location resolves the configured IANA timezone.
func (s *Settings) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Weight returns the platform weight, defaulting to 1.0.
func (s *Settings) Weight(platform string) float64 {
	if w, ok := s.PlatformWeights[platform]; ok {
		return w
	}
	return 1.0
}

func (s *Settings) validate() error {
	if len(s.EnabledPlatforms) == 0 {
		return fmt.Errorf("ENABLED_PLATFORMS must not be empty")
	}
	if s.MinOccurrence < 1 {
		return fmt.Errorf("MIN_OCCURRENCE must be >= 1, got %d", s.MinOccurrence)
	}
	if s.CandidateTopK < 1 {
		return fmt.Errorf("CANDIDATE_TOP_K must be >= 1, got %d", s.CandidateTopK)
	}
	if s.EmbeddingDimension < 1 {
		return fmt.Errorf("EMBEDDING_DIMENSION must be >= 1, got %d", s.EmbeddingDimension)
	}
	for name, threshold := range map[string]float64{
		"VECTOR_SIMILARITY_THRESHOLD": s.VectorSimilarityThreshold,
		"TITLE_JACCARD_THRESHOLD":     s.TitleJaccardThreshold,
		"SAME_EVENT_CONFIDENCE":       s.SameEventConfidence,
		"CANDIDATE_SIMILARITY":        s.CandidateSimilarity,
		"MERGE_CONFIDENCE":            s.MergeConfidence,
		"RULE_SCORE_THRESHOLD":        s.RuleScoreThreshold,
	} {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("%s must be in [0,1], got %g", name, threshold)
		}
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
