package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeibo(t *testing.T) {
	body := []byte(`{
		"ok": 1,
		"data": {
			"realtime": [
				{"word": "某地突发暴雨", "word_scheme": "#某地突发暴雨#", "num": 1234567, "icon_desc": "热"},
				{"word": "", "num": 99},
				{"word": "新片首映礼", "num": 456}
			]
		}
	}`)

	records, err := parseWeibo(body, 30)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "weibo", records[0].Platform)
	assert.Equal(t, "某地突发暴雨", records[0].Title)
	assert.Equal(t, "#某地突发暴雨#", records[0].Summary)
	assert.Contains(t, records[0].URL, "s.weibo.com")
	require.NotNil(t, records[0].RawHeat)
	assert.InDelta(t, 1234567, *records[0].RawHeat, 1e-9)

	// missing scheme falls back to the title
	assert.Equal(t, "新片首映礼", records[1].Summary)
}

func TestParseWeibo_APIError(t *testing.T) {
	_, err := parseWeibo([]byte(`{"ok": 0}`), 30)
	assert.Error(t, err)
}

func TestParseWeibo_Limit(t *testing.T) {
	body := []byte(`{"ok": 1, "data": {"realtime": [
		{"word": "一"}, {"word": "二"}, {"word": "三"}
	]}}`)
	records, err := parseWeibo(body, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseZhihu(t *testing.T) {
	body := []byte(`{
		"data": [
			{
				"detail_text": "1234 万热度",
				"target": {
					"id": 987654,
					"type": "question",
					"title": "如何看待某事件",
					"excerpt": "事件经过说明",
					"url": "https://api.zhihu.com/questions/987654"
				}
			}
		]
	}`)

	records, err := parseZhihu(body, 30)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "zhihu", records[0].Platform)
	assert.Equal(t, "如何看待某事件", records[0].Title)
	assert.Equal(t, "事件经过说明", records[0].Summary)
	assert.Equal(t, "https://www.zhihu.com/question/987654", records[0].URL)
	require.NotNil(t, records[0].RawHeat)
	assert.InDelta(t, 12340000, *records[0].RawHeat, 1e-6)
}

func TestParseZhihu_APIError(t *testing.T) {
	_, err := parseZhihu([]byte(`{"error": {"message": "需要登录"}}`), 30)
	assert.Error(t, err)
}

func TestParseHotText(t *testing.T) {
	tests := []struct {
		text   string
		want   float64
		wantOK bool
	}{
		{"1234万热度", 12340000, true},
		{"998 热度", 998, true},
		{"热度", 0, false},
		{"", 0, false},
		{"火爆", 0, false},
	}
	for _, tt := range tests {
		v, ok := parseHotText(tt.text)
		assert.Equal(t, tt.wantOK, ok, tt.text)
		if tt.wantOK {
			assert.InDelta(t, tt.want, v, 1e-6, tt.text)
		}
	}
}

func TestParseBaidu(t *testing.T) {
	body := []byte(`{
		"data": {
			"cards": [
				{
					"content": [
						{"word": "热搜词条", "desc": "词条说明", "url": "/s?wd=x", "hotScore": "4991234", "hotTag": "新"},
						{"word": "第二条", "desc": "", "url": "https://example.com/a", "hotScore": ""}
					]
				}
			]
		}
	}`)

	records, err := parseBaidu(body, 30)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "https://www.baidu.com/s?wd=x", records[0].URL)
	require.NotNil(t, records[0].RawHeat)
	assert.InDelta(t, 4991234, *records[0].RawHeat, 1e-9)

	assert.Equal(t, "第二条", records[1].Summary)
	assert.Nil(t, records[1].RawHeat)
}

func TestParseToutiao(t *testing.T) {
	body := []byte(`{
		"status": 0,
		"data": [
			{"Title": "头条热点", "Url": "https://www.toutiao.com/trending/1/", "HotValue": "8848000", "Label": "hot"}
		]
	}`)

	records, err := parseToutiao(body, 30)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "toutiao", records[0].Platform)
	require.NotNil(t, records[0].RawHeat)
	assert.InDelta(t, 8848000, *records[0].RawHeat, 1e-9)
}

func TestParseSina(t *testing.T) {
	body := []byte(`{
		"result": {
			"data": [
				{"title": "新闻标题", "url": "https://news.sina.com.cn/c/1.html", "intro": "导语", "top_num": "120934", "media_name": "新浪新闻"},
				{"title": "无链接新闻", "url": ""}
			]
		}
	}`)

	records, err := parseSina(body, 30)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "新闻标题", records[0].Title)
	assert.Equal(t, "导语", records[0].Summary)
	require.NotNil(t, records[0].RawHeat)
	assert.InDelta(t, 120934, *records[0].RawHeat, 1e-9)
}

func TestDefaultScrapers(t *testing.T) {
	scrapers := DefaultScrapers()
	for _, platform := range []string{"weibo", "zhihu", "baidu", "toutiao", "sina"} {
		s, ok := scrapers[platform]
		require.True(t, ok, platform)
		assert.Equal(t, platform, s.Platform())
	}
}

func TestMD5Hex(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", md5Hex(""))
	assert.Equal(t, md5Hex("https://example.com"), md5Hex("https://example.com"))
	assert.NotEqual(t, md5Hex("a"), md5Hex("b"))
}
