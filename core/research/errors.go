package research

import "errors"

var (
	ErrInvalidParameters = errors.New("invalid search parameters")
	ErrSearchFailed      = errors.New("não foi possível obter os resultados da busca simulada")
	ErrAnalysisFailed    = errors.New("não foi possível gerar a análise de SEO")
	ErrImageEditFailed   = errors.New("não foi possível editar a imagem")
	ErrNoImage           = errors.New("nenhuma imagem foi gerada na resposta")
)
