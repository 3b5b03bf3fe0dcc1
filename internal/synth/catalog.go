package synth

// 常用的 pin 图片尺寸
var imageDimensions = [][2]int{
	{736, 1104},
	{564, 752},
	{474, 711},
	{600, 900},
	{640, 960},
}

var searchTerms = []string{
	"outfit ideas", "home decor", "wedding dress", "healthy recipes", "workout routine",
	"diy projects", "travel destinations", "makeup tutorial", "bedroom decor", "hair styles",
	"nail art", "garden ideas", "photography tips", "art inspiration", "fashion trends",
}

var (
	accountWeights     = []float64{0.8, 0.2}
	interactionWeights = []float64{0.40, 0.25, 0.20, 0.10, 0.05}
	deviceWeights      = []float64{0.70, 0.25, 0.05}
	referrerWeights    = []float64{0.40, 0.30, 0.20, 0.10}
)

const (
	// 互动基础保留概率，偏好分类命中时乘以 categoryBoost
	baseInteractionRate = 0.15
	categoryBoost       = 3.0
)
