package shopify

// ProductSearchQuery searches products with pagination
const ProductSearchQuery = `
query searchProducts($query: String!, $first: Int!, $after: String) {
  products(first: $first, after: $after, query: $query) {
    pageInfo {
      hasNextPage
      endCursor
    }
    edges {
      node {
        id
        title
        handle
        description
        availableForSale
        priceRange {
          minVariantPrice {
            amount
            currencyCode
          }
        }
        images(first: 1) {
          edges {
            node {
              url
              altText
            }
          }
        }
        variants(first: 5) {
          edges {
            node {
              id
              title
              availableForSale
              quantityAvailable
              price {
                amount
                currencyCode
              }
            }
          }
        }
      }
    }
  }
}
`

// ProductByIDQuery fetches one product by its Shopify GID
const ProductByIDQuery = `
query getProductByID($id: ID!) {
  node(id: $id) {
    ... on Product {
      id
      title
      handle
      description
      descriptionHtml
      vendor
      productType
      tags
      availableForSale
      priceRange {
        minVariantPrice {
          amount
          currencyCode
        }
        maxVariantPrice {
          amount
          currencyCode
        }
      }
      images(first: 10) {
        edges {
          node {
            url
            altText
          }
        }
      }
      variants(first: 50) {
        edges {
          node {
            id
            title
            sku
            availableForSale
            quantityAvailable
            price {
              amount
              currencyCode
            }
          }
        }
      }
      collections(first: 10) {
        edges {
          node {
            id
            title
            handle
          }
        }
      }
    }
  }
}
`

// VariantsByIDQuery fetches inventory state for a set of variant GIDs
const VariantsByIDQuery = `
query getVariants($ids: [ID!]!) {
  nodes(ids: $ids) {
    ... on ProductVariant {
      id
      title
      sku
      availableForSale
      quantityAvailable
      price {
        amount
        currencyCode
      }
      product {
        id
        title
        handle
      }
    }
  }
}
`

// CollectionsQuery lists collections with pagination
const CollectionsQuery = `
query getCollections($first: Int!, $after: String) {
  collections(first: $first, after: $after) {
    pageInfo {
      hasNextPage
      endCursor
    }
    edges {
      node {
        id
        title
        handle
        description
      }
    }
  }
}
`

// CollectionsWithProductsQuery lists collections including a product preview
const CollectionsWithProductsQuery = `
query getCollectionsWithProducts($first: Int!, $after: String) {
  collections(first: $first, after: $after) {
    pageInfo {
      hasNextPage
      endCursor
    }
    edges {
      node {
        id
        title
        handle
        description
        products(first: 5) {
          edges {
            node {
              id
              title
              handle
            }
          }
        }
      }
    }
  }
}
`
