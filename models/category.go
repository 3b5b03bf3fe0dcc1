package models

// Categories 固定的 10 个频道分类，顺序即展示顺序
var Categories = []string{
	"Fashion",
	"Home Decor",
	"Food",
	"Travel",
	"DIY & Crafts",
	"Beauty",
	"Health & Fitness",
	"Photography",
	"Art",
	"Gardening",
}

// Subcategories 每个分类下的子分类，只是约定，入库时不校验
var Subcategories = map[string][]string{
	"Fashion":          {"Outfit Ideas", "Shoes", "Accessories", "Makeup", "Hair Styles", "Wedding Dresses"},
	"Home Decor":       {"Living Room", "Kitchen", "Bedroom", "Bathroom", "DIY Projects", "Organization"},
	"Food":             {"Recipes", "Desserts", "Healthy Eating", "Meal Prep", "Baking", "Cocktails"},
	"Travel":           {"Destinations", "Travel Tips", "Photography", "Road Trips", "Hotels", "Adventure"},
	"DIY & Crafts":     {"Art Projects", "Crafts", "Woodworking", "Sewing", "Upcycling", "Handmade"},
	"Beauty":           {"Skincare", "Makeup Tutorials", "Nail Art", "Hair Care", "Beauty Tips", "Natural Beauty"},
	"Health & Fitness": {"Workout Routines", "Yoga", "Running", "Nutrition", "Mental Health", "Weight Loss"},
	"Photography":      {"Portrait", "Landscape", "Wedding", "Street", "Nature", "Black & White"},
	"Art":              {"Paintings", "Drawings", "Digital Art", "Sculptures", "Mixed Media", "Street Art"},
	"Gardening":        {"Indoor Plants", "Garden Design", "Vegetable Gardens", "Flowers", "Landscaping", "Herbs"},
}

// IsCategory 是否为合法分类
func IsCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

const (
	AccountPersonal = "personal"
	AccountBusiness = "business"
)

const (
	InteractionSave    = "save"
	InteractionLike    = "like"
	InteractionClick   = "click"
	InteractionShare   = "share"
	InteractionComment = "comment"
)

// InteractionTypes 互动类型，顺序与生成权重一一对应
var InteractionTypes = []string{InteractionSave, InteractionLike, InteractionClick, InteractionShare, InteractionComment}

const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
	DeviceTablet  = "tablet"
)

var DeviceTypes = []string{DeviceMobile, DeviceDesktop, DeviceTablet}

const (
	ReferrerHomeFeed       = "home_feed"
	ReferrerSearch         = "search"
	ReferrerCategoryBrowse = "category_browse"
	ReferrerRelatedPins    = "related_pins"
)

var Referrers = []string{ReferrerHomeFeed, ReferrerSearch, ReferrerCategoryBrowse, ReferrerRelatedPins}

const (
	RecommendCollaborative = "collaborative"
	RecommendContentBased  = "content_based"
	RecommendTrending      = "trending"
	RecommendHybrid        = "hybrid"
)
