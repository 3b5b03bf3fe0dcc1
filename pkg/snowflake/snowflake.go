package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenRunID 每次生成任务的批次号，写入元数据并作为 OSS 对象前缀
func GenRunID() string {
	return node.Generate().String()
}
