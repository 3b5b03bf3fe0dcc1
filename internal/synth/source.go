package synth

import (
	"Pinseed/pkg/log"
	"encoding/binary"
	"math"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"
)

// Source 所有生成函数共享的随机源
// 假数据、分布采样、UUID 都从同一个 PCG 流取数，同一个 seed 与 now 得到同样的结果
type Source struct {
	src   rand.Source
	rng   *rand.Rand
	faker *gofakeit.Faker
	now   time.Time

	progressEvery int
}

func NewSource(seed uint64, now time.Time) *Source {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Source{
		src:   src,
		rng:   rand.New(src),
		faker: gofakeit.NewFaker(src, false),
		// CSV 只保留微秒
		now: now.UTC().Truncate(time.Microsecond),
	}
}

// Now 本次生成的参考时间
func (s *Source) Now() time.Time {
	return s.now
}

func (s *Source) Faker() *gofakeit.Faker {
	return s.faker
}

// Chance 以概率 p 返回 true
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// IntRange [min, max] 闭区间均匀整数
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}

// Uniform [min, max) 均匀浮点
func (s *Source) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: s.src}.Rand()
}

// Exp 均值为 mean 的指数分布，向下取整且不小于 0
func (s *Source) Exp(mean float64) int {
	v := distuv.Exponential{Rate: 1 / mean, Src: s.src}.Rand()
	return max(0, int(math.Floor(v)))
}

// Poisson 均值为 mean 的泊松分布，mean <= 0 时恒为 0
func (s *Source) Poisson(mean float64) int {
	if !(mean > 0) {
		return 0
	}
	return int(distuv.Poisson{Lambda: mean, Src: s.src}.Rand())
}

// Weighted 按权重返回下标
func (s *Source) Weighted(c distuv.Categorical) int {
	return int(c.Rand())
}

// Categorical 基于本随机源的离散分布
func (s *Source) Categorical(weights []float64) distuv.Categorical {
	return distuv.NewCategorical(weights, s.src)
}

// Pick 均匀选择一个元素
func (s *Source) Pick(items []string) string {
	return items[s.rng.IntN(len(items))]
}

// Index [0, n) 均匀下标
func (s *Source) Index(n int) int {
	return s.rng.IntN(n)
}

// Sample 无放回抽取 k 个，结果顺序随机
func (s *Source) Sample(items []string, k int) []string {
	pool := append([]string(nil), items...)
	k = min(k, len(pool))
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Between [start, end] 内的均匀时间，微秒精度；end 不晚于 start 时返回 start
func (s *Source) Between(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	span := int64(end.Sub(start) / time.Microsecond)
	return start.Add(time.Duration(s.rng.Int64N(span+1)) * time.Microsecond)
}

// UUID 由随机流产生的 v4 UUID
func (s *Source) UUID() string {
	return uuid.Must(uuid.NewRandomFromReader(uuidReader{s.rng})).String()
}

type uuidReader struct {
	rng *rand.Rand
}

func (r uuidReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

// Sentence n 个单词组成的句子，首字母大写，以句号结尾
func (s *Source) Sentence(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = s.faker.Word()
	}
	return capitalize(strings.Join(words, " ")) + "."
}

// Text 不超过 maxChars 的若干句子
func (s *Source) Text(maxChars int) string {
	var sb strings.Builder
	for {
		sentence := s.Sentence(s.IntRange(4, 10))
		if sb.Len() == 0 && len(sentence) > maxChars {
			return strings.TrimSpace(sentence[:maxChars-1]) + "."
		}
		if sb.Len()+len(sentence)+1 > maxChars {
			return sb.String()
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sentence)
	}
}

// CatchPhrase 画板标题前缀
func (s *Source) CatchPhrase() string {
	return capitalize(s.faker.Adjective() + " " + s.faker.BuzzWord() + " " + s.faker.Noun())
}

func (s *Source) progress(stage string, i int) {
	if s.progressEvery > 0 && i%s.progressEvery == 0 {
		log.L.Info("generating", zap.String("stage", stage), zap.Int("processed", i))
	}
}

func capitalize(v string) string {
	for i, r := range v {
		return string(unicode.ToUpper(r)) + v[i+len(string(r)):]
	}
	return v
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
