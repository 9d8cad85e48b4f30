// Package metrics 提供导入过程的进程内监控指标
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Registry 指标注册表
type Registry struct {
	counters   map[string]*Counter
	histograms map[string]*Histogram
	mu         sync.RWMutex
}

// Counter 计数器
type Counter struct {
	Name   string
	Help   string
	Labels []string
	values map[string]float64
	mu     sync.RWMutex
}

// Histogram 直方图
type Histogram struct {
	Name    string
	Help    string
	Buckets []float64
	counts  []int
	sum     float64
	total   int
	mu      sync.RWMutex
}

var (
	registry *Registry
	once     sync.Once
)

// GetRegistry 获取全局注册表
func GetRegistry() *Registry {
	once.Do(func() {
		registry = &Registry{
			counters:   make(map[string]*Counter),
			histograms: make(map[string]*Histogram),
		}
		initDefaultMetrics()
	})
	return registry
}

// initDefaultMetrics 初始化默认指标
func initDefaultMetrics() {
	// 行处理计数器
	registry.NewCounter("huamingce_rows_total", "处理行数", []string{"file", "result"})

	// 导入运行计数器
	registry.NewCounter("huamingce_import_runs_total", "导入运行次数", []string{"status"})

	// 导入耗时直方图
	registry.NewHistogram("huamingce_import_duration_seconds", "导入耗时",
		[]float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0})
}

// NewCounter 创建计数器
func (r *Registry) NewCounter(name, help string, labels []string) *Counter {
	r.mu.Lock()
	defer r.mu.Unlock()

	counter := &Counter{
		Name:   name,
		Help:   help,
		Labels: labels,
		values: make(map[string]float64),
	}
	r.counters[name] = counter
	return counter
}

// NewHistogram 创建直方图
func (r *Registry) NewHistogram(name, help string, buckets []float64) *Histogram {
	r.mu.Lock()
	defer r.mu.Unlock()

	histogram := &Histogram{
		Name:    name,
		Help:    help,
		Buckets: buckets,
		counts:  make([]int, len(buckets)+1),
	}
	r.histograms[name] = histogram
	return histogram
}

// GetCounter 获取计数器
func (r *Registry) GetCounter(name string) *Counter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[name]
}

// GetHistogram 获取直方图
func (r *Registry) GetHistogram(name string) *Histogram {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.histograms[name]
}

// Inc 增加计数
func (c *Counter) Inc(labelValues ...string) {
	c.Add(1, labelValues...)
}

// Add 增加指定值
func (c *Counter) Add(value float64, labelValues ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[strings.Join(labelValues, ",")] += value
}

// Observe 记录观测值
func (h *Histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	placed := false
	for i, bucket := range h.Buckets {
		if value <= bucket {
			h.counts[i]++
			placed = true
			break
		}
	}
	if !placed {
		h.counts[len(h.Buckets)]++ // +Inf bucket
	}
	h.sum += value
	h.total++
}

// Snapshot 输出全部指标的文本快照（Prometheus 展示格式）
func Snapshot() string {
	r := GetRegistry()
	r.mu.RLock()
	defer r.mu.RUnlock()

	var b strings.Builder

	names := make([]string, 0, len(r.counters))
	for name := range r.counters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		counter := r.counters[name]
		fmt.Fprintf(&b, "# HELP %s %s\n", counter.Name, counter.Help)
		fmt.Fprintf(&b, "# TYPE %s counter\n", counter.Name)

		counter.mu.RLock()
		keys := make([]string, 0, len(counter.values))
		for key := range counter.values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if key == "" {
				fmt.Fprintf(&b, "%s %g\n", counter.Name, counter.values[key])
			} else {
				fmt.Fprintf(&b, "%s{%s} %g\n", counter.Name, formatLabels(counter.Labels, key), counter.values[key])
			}
		}
		counter.mu.RUnlock()
	}

	for _, histogram := range r.histograms {
		fmt.Fprintf(&b, "# HELP %s %s\n", histogram.Name, histogram.Help)
		fmt.Fprintf(&b, "# TYPE %s histogram\n", histogram.Name)

		histogram.mu.RLock()
		cumulative := 0
		for i, bucket := range histogram.Buckets {
			cumulative += histogram.counts[i]
			fmt.Fprintf(&b, "%s_bucket{le=\"%g\"} %d\n", histogram.Name, bucket, cumulative)
		}
		fmt.Fprintf(&b, "%s_bucket{le=\"+Inf\"} %d\n", histogram.Name, histogram.total)
		fmt.Fprintf(&b, "%s_sum %g\n", histogram.Name, histogram.sum)
		fmt.Fprintf(&b, "%s_count %d\n", histogram.Name, histogram.total)
		histogram.mu.RUnlock()
	}

	return b.String()
}

// formatLabels 格式化标签
func formatLabels(names []string, values string) string {
	vals := strings.Split(values, ",")
	parts := make([]string, 0, len(names))
	for i, name := range names {
		val := ""
		if i < len(vals) {
			val = vals[i]
		}
		parts = append(parts, fmt.Sprintf("%s=%q", name, val))
	}
	return strings.Join(parts, ",")
}

// RecordImportRun 记录一次导入运行
func RecordImportRun(success bool, duration time.Duration) {
	r := GetRegistry()

	status := "success"
	if !success {
		status = "failure"
	}
	if counter := r.GetCounter("huamingce_import_runs_total"); counter != nil {
		counter.Inc(status)
	}
	if histogram := r.GetHistogram("huamingce_import_duration_seconds"); histogram != nil {
		histogram.Observe(duration.Seconds())
	}
}

// RecordRows 记录某个文件的行处理结果计数
func RecordRows(file, result string, n int) {
	if n <= 0 {
		return
	}
	if counter := GetRegistry().GetCounter("huamingce_rows_total"); counter != nil {
		counter.Add(float64(n), file, result)
	}
}
