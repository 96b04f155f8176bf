package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	// 借阅台账所有时间统一UTC存储(配合DSN的loc=UTC)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	// 最大打开连接数（建议：CPU核数 * 2 + 磁盘数量）
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)

	// 最大空闲连接数（建议：MaxOpenConns的1/4到1/2）
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	// 连接最大存活时间（防止数据库主动断开连接）
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&StaffModel{},
		&AuthorModel{},
		&BookModel{},
		&MemberModel{},
		&BorrowingRecordModel{},
	)
}

// StaffModel GORM馆员模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/staff/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type StaffModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Name      string         `gorm:"size:50;not null;comment:姓名"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (StaffModel) TableName() string {
	return "staff"
}

// AuthorModel GORM作者模型
// NotableWorks序列化为JSON字符串存储(代表作列表,无查询需求)
type AuthorModel struct {
	ID           uint           `gorm:"primaryKey"`
	FirstName    string         `gorm:"index:idx_author_name;size:50;not null;comment:名"`
	LastName     string         `gorm:"index:idx_author_name;size:50;not null;comment:姓"`
	BirthDate    time.Time      `gorm:"not null;comment:出生日期"`
	DeathDate    *time.Time     `gorm:"comment:逝世日期(NULL表示在世)"`
	Nationality  string         `gorm:"size:50;not null;comment:国籍"`
	Biography    string         `gorm:"type:text;comment:简介"`
	NotableWorks string         `gorm:"type:text;comment:代表作(JSON数组)"`
	CreatedAt    time.Time      `gorm:"comment:创建时间"`
	UpdatedAt    time.Time      `gorm:"comment:更新时间"`
	DeletedAt    gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. ISBN有唯一索引,防止重复
// 2. AvailableCopies/TotalCopies是借阅台账的核心计数,
//    变更只走原子UPDATE(见IncrAvailable),CHECK约束兜底
// 3. Genres序列化为JSON字符串存储
type BookModel struct {
	ID              uint           `gorm:"primaryKey"`
	Title           string         `gorm:"index:idx_book_search;size:200;not null;comment:书名"` // 搜索索引
	Author          string         `gorm:"index:idx_book_search;size:100;not null;comment:作者"` // 搜索索引
	ISBN            string         `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Genres          string         `gorm:"type:text;comment:分类标签(JSON数组)"`
	PublishedYear   int            `gorm:"comment:出版年份"`
	Publisher       string         `gorm:"size:100;comment:出版社"`
	Pages           int            `gorm:"comment:页数"`
	TotalCopies     int            `gorm:"not null;default:0;comment:馆藏总副本数"`
	AvailableCopies int            `gorm:"not null;default:0;comment:可借副本数"`
	CreatedAt       time.Time      `gorm:"index;comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// MemberModel GORM会员模型
// 设计说明:
// 1. Email有唯一索引
// 2. BorrowedBooks是未归还计数的冗余字段,变更只走原子UPDATE(见IncrBorrowed)
// 3. 地址展开为列存储(值对象扁平化,避免额外关联表)
type MemberModel struct {
	ID              uint           `gorm:"primaryKey"`
	FirstName       string         `gorm:"index:idx_member_name;size:50;not null;comment:名"`
	LastName        string         `gorm:"index:idx_member_name;size:50;not null;comment:姓"`
	Email           string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Phone           string         `gorm:"size:30;not null;comment:电话"`
	Street          string         `gorm:"size:200;comment:街道"`
	City            string         `gorm:"size:100;comment:城市"`
	State           string         `gorm:"size:100;comment:州/省"`
	ZipCode         string         `gorm:"size:20;comment:邮编"`
	MembershipDate  time.Time      `gorm:"not null;comment:入会日期"`
	MembershipType  string         `gorm:"size:20;not null;comment:会员类型"`
	Status          int            `gorm:"index;type:tinyint;default:1;comment:状态(1正常2停用3暂停)"`
	BorrowedBooks   int            `gorm:"not null;default:0;comment:未归还数量"`
	MaxBooksAllowed int            `gorm:"not null;comment:借阅上限"`
	CreatedAt       time.Time      `gorm:"comment:创建时间"`
	UpdatedAt       time.Time      `gorm:"comment:更新时间"`
	DeletedAt       gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (MemberModel) TableName() string {
	return "members"
}

// BorrowingRecordModel GORM借阅记录模型
// 设计说明:
// 1. (BookID, MemberID, Status)复合索引支撑"同一会员同一本书未还"的快速查询
// 2. Status使用int存储(1已借出3已归还4逾期归还;2逾期为派生状态不落库)
// 3. 逾期费用int64存"分",避免浮点精度问题
// 4. 借阅记录不做软删除:删除仅允许终态记录,是真正的台账清理
type BorrowingRecordModel struct {
	ID           uint       `gorm:"primaryKey"`
	BookID       uint       `gorm:"index:idx_open_record;not null;comment:图书ID"`
	MemberID     uint       `gorm:"index:idx_open_record;index;not null;comment:会员ID"`
	BorrowDate   time.Time  `gorm:"not null;comment:借出时间"`
	DueDate      time.Time  `gorm:"index;not null;comment:应还时间"`
	ReturnDate   *time.Time `gorm:"comment:归还时间(NULL表示未归还)"`
	Status       int        `gorm:"index:idx_open_record;type:tinyint;default:1;comment:状态(1已借出3已归还4逾期归还)"`
	LateFeeCents int64      `gorm:"not null;default:0;comment:逾期费(分)"`
	RenewalCount int        `gorm:"not null;default:0;comment:续借次数"`
	Notes        string     `gorm:"size:500;comment:备注"`
	CreatedAt    time.Time  `gorm:"index;comment:创建时间"`
	UpdatedAt    time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BorrowingRecordModel) TableName() string {
	return "borrowing_records"
}
