package request

// --- 请求结构 ---
type ValidateMnemonicReq struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
}

type SeedReq struct {
	Mnemonic   string `json:"mnemonic" binding:"required"`
	Passphrase string `json:"passphrase"`
}

type DeriveAddressReq struct {
	Mnemonic   string `json:"mnemonic" binding:"required"`
	Passphrase string `json:"passphrase"`
	Path       string `json:"path"` // 可选, 默认使用配置的路径
}

// --- 响应结构 ---
type MnemonicResp struct {
	Mnemonic string `json:"mnemonic"`
}

type ValidateResp struct {
	Valid bool `json:"valid"`
}

type SeedResp struct {
	Seed string `json:"seed"` // hex
}

type AddressResp struct {
	Address string `json:"address"`
	Path    string `json:"path"`
	Network string `json:"network"`
}

type ErrorResp struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
