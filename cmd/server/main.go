// @title           Membership HTTP Service API
// @version         1.0
// @description     A community membership management system with nested member records, payments, incidents and file uploads
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.yourcompany.com/support
// @contact.email  support@yourcompany.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"membership-http-service/internal/app/routes"
	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/infrastructure/config"
	"membership-http-service/internal/infrastructure/database"
	Logger "membership-http-service/pkg/logger"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 创建优化的数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	db := pool.GetDB()

	// 根据配置执行不同的数据库操作
	if cfg.DBMigrationMode == "drop" {
		// 删除并重建表
		log.Println("警告: 在drop模式下运行，将删除并重建所有表")
		err = dropAndRecreateTables(db)
		if err != nil {
			log.Fatalf("删除并重建表失败: %v", err)
		}
	} else {
		// 默认AutoMigrate，只会添加新列和新表，不会删除或修改列
		log.Println("在标准模式下运行，将只添加新列和新表")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("自动迁移失败: %v", err)
		}
	}

	// 确保系统中有管理员账户，必要时写入示例数据
	ensureAdminExists(db, cfg)
	if cfg.SeedSampleData {
		seedSampleMembers(db)
	}

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	// 使用配置中的端口
	port := cfg.ServerPort

	// 打印系统信息
	printSystemInfo(pool)

	// 启动服务器 - 注意监听所有接口(0.0.0.0)而不是只监听localhost
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Member{},
		&models.Address{},
		&models.FamilyMember{},
		&models.Payment{},
		&models.Incident{},
		&models.MemberFile{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables 删除并重建所有表
func dropAndRecreateTables(db *gorm.DB) error {
	// 获取底层SQL连接
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	// 禁用外键约束检查
	_, err = sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0")
	if err != nil {
		log.Printf("禁用外键约束检查失败: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1") // 确保在函数结束时重新启用外键约束

	// 删除所有表
	tables := []string{
		"addresses", "family_members", "payments", "incidents", "member_files", "members",
	}

	for _, table := range tables {
		log.Printf("删除表: %s", table)
		_, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
		if err != nil {
			log.Printf("删除表失败: %v", err)
		}
	}

	// 重新创建表
	return autoMigrate(db)
}

// ensureAdminExists 确保系统中有管理员账户
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Member{}).Where("is_admin = ?", true).Count(&count)

	if count == 0 {
		// 如果没有管理员，创建默认管理员
		admin := models.Member{
			FirstName: "System",
			LastName:  "Admin",
			Email:     "admin@membership.local",
			UserName:  "admin",
			Password:  cfg.DefaultAdminPassword, // BeforeCreate钩子负责哈希
			IsActive:  true,
			IsAdmin:   true,
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("创建默认管理员失败: %v", err)
		}

		log.Println("已创建默认管理员账户")
	}
}

// seedSampleMembers 在空库时写入示例会员数据，方便本地联调
func seedSampleMembers(db *gorm.DB) {
	var count int64
	db.Model(&models.Member{}).Where("is_admin = ?", false).Count(&count)
	if count > 0 {
		return
	}

	members := []models.Member{
		{
			FirstName:    "John",
			LastName:     "Doe",
			Email:        "john@example.com",
			PhoneNumber:  "555-0101",
			RegisterDate: "2020-01-15",
			IsActive:     true,
			UserName:     "john_doe",
			Password:     "Default@123",
			Addresses: []models.Address{
				{Street: "123 Main St", City: "Seattle", State: "WA", Country: "USA", ZipCode: "98101"},
			},
			FamilyMembers: []models.FamilyMember{
				{MemberFamilyFirstName: "Jane", MemberFamilyLastName: "Doe", Relationship: "spouse"},
			},
			Payments: []models.Payment{
				{PaymentAmount: 120.00, PaymentDate: mustDate("2024-01-15"), PaymentType: models.PaymentTypeCash, PaymentRecurringType: models.RecurringTypeAnnual},
			},
		},
		{
			FirstName:    "Tom",
			LastName:     "Smith",
			Email:        "tom@example.com",
			PhoneNumber:  "555-0102",
			RegisterDate: "2021-06-01",
			IsActive:     true,
			UserName:     "tom_smith",
			Password:     "Default@123",
			Payments: []models.Payment{
				{PaymentAmount: 10.00, PaymentDate: mustDate("2024-02-01"), PaymentType: models.PaymentTypeCreditCard, PaymentRecurringType: models.RecurringTypeMonthly},
			},
			Incidents: []models.Incident{
				{EventNumber: 1, IncidentType: models.IncidentTypeNaturalDeath, IncidentDescription: "Claim for late uncle", IncidentDate: mustDate("2024-03-10")},
			},
		},
	}

	for i := range members {
		if err := db.Create(&members[i]).Error; err != nil {
			log.Printf("写入示例会员失败: %v", err)
			return
		}
	}
	log.Println("已写入示例会员数据")
}

// mustDate 解析示例数据中的日期
func mustDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// printSystemInfo 打印系统信息
func printSystemInfo(pool *database.ConnectionPool) {
	// 打印数据库连接池信息
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("数据库连接池状态: %+v", stats)
	}

	// 打印系统资源信息
	log.Printf("系统CPU核心数: %d", runtime.NumCPU())
	log.Printf("当前Go协程数: %d", runtime.NumGoroutine())

	// 打印内存信息
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("系统内存使用: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
