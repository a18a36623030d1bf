package dto

// CreateBookRequest HTTP创建图书请求
// validator tag说明:
// - required: 必填字段
// - min/max: 长度限制
// Price使用指针区分"未提供"和"0元",required只校验非nil
// 负数价格的校验放在领域层(40900),与类型错误(40901)区分开
type CreateBookRequest struct {
	Title     string   `json:"title" binding:"required,max=200" example:"沙丘"`
	Author    string   `json:"author" binding:"required,max=100" example:"弗兰克·赫伯特"`
	Price     *float64 `json:"price" binding:"required" example:"15.99"`
	Available *bool    `json:"available" example:"true"` // 缺省为true
}

// UpdateBookRequest HTTP更新图书请求
// 所有字段可选,未提供的字段保持不变(部分更新语义)
type UpdateBookRequest struct {
	Title     *string  `json:"title" binding:"omitempty,min=1,max=200" example:"沙丘"`
	Author    *string  `json:"author" binding:"omitempty,min=1,max=100" example:"弗兰克·赫伯特"`
	Price     *float64 `json:"price" example:"9.99"`
	Available *bool    `json:"available" example:"false"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID        uint    `json:"id" example:"1"`
	Title     string  `json:"title" example:"沙丘"`
	Author    string  `json:"author" example:"弗兰克·赫伯特"`
	Price     float64 `json:"price" example:"15.99"`
	Available bool    `json:"available" example:"true"`
	CreatedAt string  `json:"created_at" example:"2024-01-15 10:30:00"`
	UpdatedAt string  `json:"updated_at" example:"2024-01-15 10:30:00"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	List  []BookResponse `json:"list"`
	Total int            `json:"total" example:"2"`
}
