package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/ramses2099/storeapiv2/config"
	"github.com/ramses2099/storeapiv2/database"
	"github.com/ramses2099/storeapiv2/logger"
	aws_pkg "github.com/ramses2099/storeapiv2/pkg/aws"
	"github.com/ramses2099/storeapiv2/pkg/kafka"
	"github.com/ramses2099/storeapiv2/repository"
	"github.com/ramses2099/storeapiv2/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds everything a command needs once configuration, logging and the
// database are up.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	metrics aws_pkg.MetricsRecorder
	events  *kafka.Producer

	users        services.UserService
	customers    services.CustomerService
	employees    services.EmployeeService
	vendors      services.VendorService
	categories   services.CategoryService
	products     services.ProductService
	orders       services.OrderService
	orderDetails services.OrderDetailService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	awsCfg, awsErr := aws_pkg.LoadAWSConfig(ctx)

	var cloudWatchLogs io.Writer
	var logStream string
	if cfg.CloudWatchLogsEnabled {
		if awsErr != nil {
			return nil, fmt.Errorf("cloudwatch logs enabled: %w", awsErr)
		}
		w, err := aws_pkg.NewCloudWatchLogsWriter(ctx, awsCfg, cfg.CloudWatchLogGroup, serviceName)
		if err != nil {
			return nil, err
		}
		cloudWatchLogs, logStream = w, w.Stream()
	}

	log, err := logger.New(cfg.Env, cloudWatchLogs)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if cloudWatchLogs != nil {
		log.Info("Shipping logs to CloudWatch", zap.String("log_group", cfg.CloudWatchLogGroup), zap.String("log_stream", logStream))
	}

	db, err := database.ConnectPostgres(cfg.DSN(), logger.GormLevel(cfg.Env), log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	a := &app{cfg: cfg, logger: log, db: db}

	var publisher aws_pkg.SNSPublisher
	topic := cfg.SNSTopicArn
	if cfg.EventsBackend == config.EventsKafka {
		a.events = kafka.NewProducer(cfg.KafkaBrokers, log)
		publisher = a.events
		topic = cfg.KafkaTopic
	}

	if awsErr != nil {
		log.Warn("AWS config unavailable, SNS and CloudWatch disabled", zap.Error(awsErr))
	} else {
		if cfg.EventsBackend == config.EventsSNS && cfg.SNSTopicArn != "" {
			publisher = aws_pkg.NewSNSClient(awsCfg)
		}
		if cfg.CloudWatchEnabled {
			a.metrics = aws_pkg.NewMetricsClient(awsCfg, cfg.CloudWatchNamespace, true)
		}
	}

	tx := repository.NewGormTransactor(db)
	a.users = services.NewUserService(tx, publisher, topic, log)
	a.customers = services.NewCustomerService(tx, publisher, topic, log)
	a.employees = services.NewEmployeeService(tx, publisher, topic, log)
	a.vendors = services.NewVendorService(tx, publisher, topic, log)
	a.categories = services.NewCategoryService(tx, publisher, topic, log)
	a.products = services.NewProductService(tx, publisher, topic, log)
	a.orders = services.NewOrderService(tx, publisher, topic, log)
	a.orderDetails = services.NewOrderDetailService(tx, publisher, topic, log)
	return a, nil
}

func (a *app) close() {
	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.logger.Warn("Failed to close Kafka producer", zap.Error(err))
		}
	}
	if err := database.Close(a.db); err != nil {
		a.logger.Warn("Failed to close database", zap.Error(err))
	}
	_ = a.logger.Sync()
}
