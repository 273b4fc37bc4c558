package utils

import "strconv"

/*
BIP-44 路径解析这个路径中的每一个斜杠 / 分隔的部分都代表了密钥树结构中的一个层级（Level）。
路径的结构遵循以下五个层级：m / purpose' / coin_type' / account' / change / address_index
层级	路径中的值	名称(BIP-44)		  描述
1		m         Master Key     	   主私钥，由 BIP39 seed 经 HMAC-SHA512("Bitcoin seed") 得到。
2       44'		  Purpose        	   BIP-44 标准编号，硬化派生。
3       0'        Coin Type      	   0' = Bitcoin (BTC)，1' = Testnet。
4 		0'		  Account 			   账户，从 0' 开始编号。
5		0		  Change      		   0 外部链(收款地址)，1 内部链(找零地址)。常规派生。
6       0         Address Index		   地址索引，从 0 开始。常规派生。

硬化层级使用 0x00||k||index 作为 HMAC 输入，常规层级使用压缩公钥 serP(K)||index。
*/
const (
	BTC_DERIVATION_PATH_PREFIX = "m/44'/0'/0'/0/"
)

// AddressPath returns the external-chain path for index under prefix.
func AddressPath(prefix string, index uint32) string {
	return prefix + strconv.FormatUint(uint64(index), 10)
}
