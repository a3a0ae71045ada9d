package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Platform scrapers for the hot-list JSON APIs. Each one splits fetching
// from parsing so the parsers stay testable offline.

// --- weibo ---

type WeiboScraper struct{ f *fetcher }

func NewWeiboScraper() *WeiboScraper { return &WeiboScraper{f: newFetcher(10 * time.Second)} }

func (s *WeiboScraper) Platform() string { return "weibo" }

func (s *WeiboScraper) FetchHotList(ctx context.Context, limit int) ([]Record, error) {
	body, err := s.f.get(ctx, "https://weibo.com/ajax/side/hotSearch", map[string]string{
		"Referer": "https://weibo.com/",
	})
	if err != nil {
		return nil, err
	}
	return parseWeibo(body, limit)
}

func parseWeibo(body []byte, limit int) ([]Record, error) {
	var payload struct {
		OK   int `json:"ok"`
		Data struct {
			Realtime []struct {
				Word       string  `json:"word"`
				WordScheme string  `json:"word_scheme"`
				Num        float64 `json:"num"`
				IconDesc   string  `json:"icon_desc"`
			} `json:"realtime"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("weibo response: %w", err)
	}
	if payload.OK != 1 {
		return nil, fmt.Errorf("weibo api returned ok=%d", payload.OK)
	}

	var records []Record
	for _, item := range payload.Data.Realtime {
		if len(records) >= limit {
			break
		}
		title := strings.TrimSpace(item.Word)
		if title == "" {
			continue
		}
		summary := strings.TrimSpace(item.WordScheme)
		if summary == "" {
			summary = title
		}
		records = append(records, Record{
			Platform: "weibo",
			Title:    title,
			Summary:  summary,
			URL:      "https://s.weibo.com/weibo?q=" + url.QueryEscape("#"+title+"#"),
			RawHeat:  heat(item.Num),
			Interactions: map[string]interface{}{
				"hot_value": item.Num,
				"icon_desc": item.IconDesc,
			},
		})
	}
	return records, nil
}

// --- zhihu ---

type ZhihuScraper struct{ f *fetcher }

func NewZhihuScraper() *ZhihuScraper { return &ZhihuScraper{f: newFetcher(30 * time.Second)} }

func (s *ZhihuScraper) Platform() string { return "zhihu" }

func (s *ZhihuScraper) FetchHotList(ctx context.Context, limit int) ([]Record, error) {
	body, err := s.f.get(ctx, "https://api.zhihu.com/topstory/hot-lists/desktop", map[string]string{
		"Referer": "https://www.zhihu.com/hot",
		"Origin":  "https://www.zhihu.com",
	})
	if err != nil {
		return nil, err
	}
	return parseZhihu(body, limit)
}

func parseZhihu(body []byte, limit int) ([]Record, error) {
	var payload struct {
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
		Data []struct {
			DetailText string `json:"detail_text"`
			Target     struct {
				ID      json.Number `json:"id"`
				Type    string      `json:"type"`
				Title   string      `json:"title"`
				Excerpt string      `json:"excerpt"`
				URL     string      `json:"url"`
			} `json:"target"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("zhihu response: %w", err)
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("zhihu api error: %s", payload.Error.Message)
	}

	var records []Record
	for _, item := range payload.Data {
		if len(records) >= limit {
			break
		}
		title := strings.TrimSpace(item.Target.Title)
		if title == "" {
			continue
		}
		summary := strings.TrimSpace(item.Target.Excerpt)
		if summary == "" {
			summary = title
		}
		rec := Record{
			Platform: "zhihu",
			Title:    title,
			Summary:  summary,
			URL:      zhihuQuestionURL(item.Target.URL, item.Target.ID.String()),
			Interactions: map[string]interface{}{
				"detail_text": item.DetailText,
			},
		}
		if v, ok := parseHotText(item.DetailText); ok {
			rec.RawHeat = heat(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// zhihuQuestionURL rewrites the api.zhihu.com form into the public page.
func zhihuQuestionURL(raw, id string) string {
	if strings.Contains(raw, "api.zhihu.com/questions/") || raw == "" {
		return "https://www.zhihu.com/question/" + id
	}
	return raw
}

// parseHotText turns strings such as "1234万热度" into a raw heat value.
func parseHotText(text string) (float64, bool) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "热度", ""))
	if text == "" {
		return 0, false
	}
	multiplier := 1.0
	if strings.Contains(text, "万") {
		multiplier = 10000
		text = strings.ReplaceAll(text, "万", "")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, false
	}
	return v * multiplier, true
}

// --- baidu ---

type BaiduScraper struct{ f *fetcher }

func NewBaiduScraper() *BaiduScraper { return &BaiduScraper{f: newFetcher(10 * time.Second)} }

func (s *BaiduScraper) Platform() string { return "baidu" }

func (s *BaiduScraper) FetchHotList(ctx context.Context, limit int) ([]Record, error) {
	body, err := s.f.get(ctx, "https://top.baidu.com/api/board?platform=pc&tab=realtime", map[string]string{
		"Referer": "https://top.baidu.com/board?tab=realtime",
		"Origin":  "https://top.baidu.com",
	})
	if err != nil {
		return nil, err
	}
	return parseBaidu(body, limit)
}

func parseBaidu(body []byte, limit int) ([]Record, error) {
	var payload struct {
		Data struct {
			Cards []struct {
				Content []struct {
					Word     string `json:"word"`
					Desc     string `json:"desc"`
					URL      string `json:"url"`
					HotScore string `json:"hotScore"`
					HotTag   string `json:"hotTag"`
				} `json:"content"`
			} `json:"cards"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("baidu response: %w", err)
	}

	var records []Record
	for _, card := range payload.Data.Cards {
		for _, item := range card.Content {
			if len(records) >= limit {
				return records, nil
			}
			title := strings.TrimSpace(item.Word)
			if title == "" {
				continue
			}
			summary := strings.TrimSpace(item.Desc)
			if summary == "" {
				summary = title
			}
			link := item.URL
			if link != "" && !strings.HasPrefix(link, "http") {
				link = "https://www.baidu.com" + link
			}
			rec := Record{
				Platform: "baidu",
				Title:    title,
				Summary:  summary,
				URL:      link,
				Interactions: map[string]interface{}{
					"hot_tag": item.HotTag,
				},
			}
			if v, err := strconv.ParseFloat(item.HotScore, 64); err == nil {
				rec.RawHeat = heat(v)
			}
			records = append(records, rec)
		}
	}
	return records, nil
}

// --- toutiao ---

type ToutiaoScraper struct{ f *fetcher }

func NewToutiaoScraper() *ToutiaoScraper { return &ToutiaoScraper{f: newFetcher(10 * time.Second)} }

func (s *ToutiaoScraper) Platform() string { return "toutiao" }

func (s *ToutiaoScraper) FetchHotList(ctx context.Context, limit int) ([]Record, error) {
	body, err := s.f.get(ctx, "https://www.toutiao.com/hot-event/hot-board/?origin=toutiao_pc", map[string]string{
		"Referer": "https://www.toutiao.com/",
		"Origin":  "https://www.toutiao.com",
	})
	if err != nil {
		return nil, err
	}
	return parseToutiao(body, limit)
}

func parseToutiao(body []byte, limit int) ([]Record, error) {
	var payload struct {
		Status json.Number `json:"status"`
		Data   []struct {
			Title    string      `json:"Title"`
			URL      string      `json:"Url"`
			HotValue json.Number `json:"HotValue"`
			Label    string      `json:"Label"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("toutiao response: %w", err)
	}

	var records []Record
	for _, item := range payload.Data {
		if len(records) >= limit {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		rec := Record{
			Platform: "toutiao",
			Title:    title,
			Summary:  title,
			URL:      item.URL,
			Interactions: map[string]interface{}{
				"label": item.Label,
			},
		}
		if v, err := item.HotValue.Float64(); err == nil {
			rec.RawHeat = heat(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// --- sina ---

type SinaScraper struct{ f *fetcher }

func NewSinaScraper() *SinaScraper { return &SinaScraper{f: newFetcher(10 * time.Second)} }

func (s *SinaScraper) Platform() string { return "sina" }

func (s *SinaScraper) FetchHotList(ctx context.Context, limit int) ([]Record, error) {
	body, err := s.f.get(ctx, "https://top.news.sina.com.cn/ws/GetTopDataList.php?top_type=day&top_cat=www&format=json", map[string]string{
		"Referer": "https://news.sina.com.cn/",
	})
	if err != nil {
		return nil, err
	}
	return parseSina(body, limit)
}

func parseSina(body []byte, limit int) ([]Record, error) {
	var payload struct {
		Result struct {
			Data []struct {
				Title     string      `json:"title"`
				URL       string      `json:"url"`
				Intro     string      `json:"intro"`
				TopNum    json.Number `json:"top_num"`
				MediaName string      `json:"media_name"`
				CreateGMT json.Number `json:"create_date"`
			} `json:"data"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("sina response: %w", err)
	}

	var records []Record
	for _, item := range payload.Result.Data {
		if len(records) >= limit {
			break
		}
		title := strings.TrimSpace(item.Title)
		if title == "" || item.URL == "" {
			continue
		}
		summary := strings.TrimSpace(item.Intro)
		if summary == "" {
			summary = title
		}
		rec := Record{
			Platform: "sina",
			Title:    title,
			Summary:  summary,
			URL:      item.URL,
			Interactions: map[string]interface{}{
				"media_name": item.MediaName,
			},
		}
		if v, err := item.TopNum.Float64(); err == nil {
			rec.RawHeat = heat(v)
		}
		records = append(records, rec)
	}
	return records, nil
}

// DefaultScrapers returns the built-in scrapers keyed by platform.
func DefaultScrapers() map[string]Scraper {
	scrapers := []Scraper{
		NewWeiboScraper(),
		NewZhihuScraper(),
		NewBaiduScraper(),
		NewToutiaoScraper(),
		NewSinaScraper(),
	}
	byPlatform := make(map[string]Scraper, len(scrapers))
	for _, s := range scrapers {
		byPlatform[s.Platform()] = s
	}
	return byPlatform
}
