package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 指标定义：
// - http_requests_total：按路由模板、方法、状态码统计请求次数
// - http_request_duration_seconds：按路由模板、方法统计耗时分布
// - sms_sent_total：短信发送结果（success/failure/timeout）
// - orders_placed_total：成功下单数
// - logins_total：登录结果（success/failure）
var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP 请求计数（按路径/方法/状态）"},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP 请求耗时（秒）", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	SMSSent = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: "sms_sent_total", Help: "短信验证码发送次数（按结果）"},
		[]string{"result"},
	)
	OrdersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{Name: "orders_placed_total", Help: "成功创建的订单数"},
	)
	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{Name: "logins_total", Help: "登录次数（按结果）"},
		[]string{"result"},
	)
)

// Handler 返回记录基础 HTTP 指标的中间件
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			// 未命中路由时不使用原始 URL，避免标签基数膨胀
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Exposer 返回标准 Prometheus 暴露处理器
func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
