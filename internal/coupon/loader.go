package coupon

import (
	"bufio"
	"compress/gzip"
	"context"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// ruleDocument is the on-disk format of a rule source:
//
//	rules:
//	  - code: WELCOME
//	    rate: 0.20
//	    description: 20% Welcome Discount
type ruleDocument struct {
	Rules []struct {
		Code        string  `yaml:"code"`
		Rate        float64 `yaml:"rate"`
		Description string  `yaml:"description"`
	} `yaml:"rules"`
}

// sourceLoadResult holds the result of loading a single source
type sourceLoadResult struct {
	index int
	rules []Rule
	err   error
}

var httpClient = &http.Client{Timeout: 30 * time.Second}

// LoadRules reads rule documents from files or http(s) URLs concurrently.
// Sources may be gzip-compressed. Results are merged in source order, so a
// later source overrides codes defined by an earlier one.
func LoadRules(ctx context.Context, sources []string) ([]Rule, error) {
	if len(sources) == 0 {
		return nil, errors.New("no rule sources provided")
	}

	resultChan := make(chan sourceLoadResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, source string) {
			defer wg.Done()

			rules, err := loadSource(ctx, source)
			resultChan <- sourceLoadResult{
				index: index,
				rules: rules,
				err:   err,
			}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]sourceLoadResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	sets := make([][]Rule, 0, len(results))
	for i, result := range results {
		if result.err != nil {
			return nil, errors.Wrapf(result.err, "load rule source %d (%s)", i+1, sources[i])
		}
		sets = append(sets, result.rules)
	}

	return Merge(sets...), nil
}

func loadSource(ctx context.Context, source string) ([]Rule, error) {
	source = strings.TrimSpace(source)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return loadFromURL(ctx, source)
	}
	return loadFromFile(source)
}

func loadFromFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	return readRules(f)
}

// loadFromURL downloads a rule document
func loadFromURL(ctx context.Context, url string) ([]Rule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "download")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return readRules(resp.Body)
}

// readRules decodes a rule document, transparently inflating gzip input.
func readRules(r io.Reader) ([]Rule, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		defer gz.Close()
		return parseRules(gz)
	}
	return parseRules(br)
}

func parseRules(r io.Reader) ([]Rule, error) {
	var doc ruleDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode rules")
	}

	rules := make([]Rule, 0, len(doc.Rules))
	for _, d := range doc.Rules {
		if math.IsNaN(d.Rate) || math.IsInf(d.Rate, 0) {
			return nil, errors.Errorf("rule %s: rate must be a finite number", d.Code)
		}
		rules = append(rules, NewRule(d.Code, d.Rate, d.Description))
	}
	return rules, nil
}
