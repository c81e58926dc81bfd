package middlewares

import (
	"time"

	"github.com/avagut/authhub/internal/conf"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	limiter "github.com/ulule/limiter/v3"
)

func Init(e *gin.Engine) {
	e.
		Use(gin.LoggerWithWriter(log.StandardLogger().Out), gin.RecoveryWithWriter(log.StandardLogger().Out)).
		Use(NewLog(log.StandardLogger())).
		Use(NewCors())
	if conf.Conf.RateLimit.Enable {
		period, err := time.ParseDuration(conf.Conf.RateLimit.Period)
		if err != nil {
			log.Fatalf("rate limit period error: %v", err)
		}
		var options []limiter.Option
		if conf.Conf.RateLimit.TrustForwardHeader {
			options = append(options, limiter.WithTrustForwardHeader(true))
		}
		e.Use(NewLimiter(period, conf.Conf.RateLimit.Limit, options...))
	}
}
