package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"line-shop-bot"`

	ChannelSecret      string        `env:"LINE_CHANNEL_SECRET"`
	ChannelAccessToken string        `env:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineAPIBaseURL     string        `env:"LINE_API_BASE_URL" envDefault:"https://api.line.me"`
	OperatorUserID     string        `env:"OPERATOR_USER_ID"`
	PushTimeout        time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	ProfileCacheTTL    time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"10m"`

	Shop Shop `envPrefix:"SHOP_"`
}

// Shop holds the shop specific content used to build the canned replies.
type Shop struct {
	Name       string `env:"NAME" envDefault:"Salon Hanamizuki"`
	Phone      string `env:"PHONE" envDefault:"03-1234-5678"`
	Address    string `env:"ADDRESS" envDefault:"東京都渋谷区神南1-2-3"`
	Hours      string `env:"HOURS" envDefault:"10:00〜20:00(火曜定休)"`
	MapURL     string `env:"MAP_URL" envDefault:"https://maps.google.com/?q=35.6628,139.6983"`
	ImageURL   string `env:"IMAGE_URL" envDefault:"https://example.com/images/shop.jpg"`
	CouponText string `env:"COUPON_TEXT" envDefault:"🎁 LINE友だち限定クーポン\n初回カット 20%OFF\n有効期限:発行から30日間\nご来店時にこの画面をご提示ください。"`
	StaffAName string `env:"STAFF_A_NAME" envDefault:"佐藤"`
	StaffAForm string `env:"STAFF_A_FORM_URL" envDefault:"https://forms.example.com/reserve/staff-a"`
	StaffBName string `env:"STAFF_B_NAME" envDefault:"鈴木"`
	StaffBForm string `env:"STAFF_B_FORM_URL" envDefault:"https://forms.example.com/reserve/staff-b"`
}
