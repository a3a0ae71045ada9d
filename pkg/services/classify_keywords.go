package services

// Keyword tables for rule-based topic classification. Strong keywords carry
// more weight than medium ones; matching is plain substring over the topic's
// title and latest summary.

var entertainmentStrong = []string{
	"明星", "娱乐", "八卦", "绯闻", "爆料", "综艺", "电影", "电视剧", "演员", "歌手",
	"偶像", "爱豆", "粉丝", "娱乐圈", "影视", "节目", "出轨", "离婚", "恋情", "结婚",
	"生子", "颁奖", "首映", "热播",
}

var entertainmentMedium = []string{
	"导演", "编剧", "制作人", "经纪人", "造型师", "剧组", "片场", "首播", "上映",
	"票房", "收视率", "口碑", "评分", "豆瓣",
}

var currentAffairsStrong = []string{
	"政策", "法规", "政府", "国务院", "发改委", "司法", "法院", "检察", "公安", "警方",
	"事故", "案件", "民生", "舆情", "公共", "社会", "财经", "经济", "股市", "央行",
	"监管", "治理", "改革", "疫情",
}

var currentAffairsMedium = []string{
	"会议", "通知", "公告", "声明", "调查", "处理", "整治", "专项", "民众", "市民",
	"居民", "群众", "网友", "热议", "关注", "讨论",
}

var sportsEsportsStrong = []string{
	"比赛", "联赛", "世界杯", "总决赛", "季后赛", "决赛", "半决赛", "球队", "球员",
	"教练", "俱乐部", "战队", "电竞", "赛事", "夺冠", "冠军", "亚军", "金牌", "银牌",
	"铜牌", "破纪录", "MVP",
}

var sportsEsportsMedium = []string{
	"足球", "篮球", "网球", "羽毛球", "乒乓球", "游泳", "田径", "体操", "LOL", "DOTA",
	"王者荣耀", "吃鸡", "CS", "转会", "签约", "续约",
}

// platformCategoryBias adds a prior for platforms with a dominant audience.
var platformCategoryBias = map[string]map[string]float64{
	"hupu": {"sports_esports": 0.3},
}
